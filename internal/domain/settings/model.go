package settings

// FooterLink is one footer navigation entry.
type FooterLink struct {
	Name string
	URL  string
}

// Settings is the singleton site/SEO configuration record.
type Settings struct {
	Title              string
	Description        string
	Keywords           string
	OGTitle            string
	OGDescription      string
	OGImage            string
	TwitterTitle       string
	TwitterDescription string
	TwitterImage       string
	Favicon            string
	GoogleAnalytics    string
	FacebookPixel      string
	FooterText         string
	FooterLinks        []FooterLink
	AdminPath          string
}
