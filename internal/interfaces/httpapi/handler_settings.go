package httpapi

import (
	"net/http"

	"github.com/futemax/futemax-api/internal/domain/settings"
)

type footerLinkDTO struct {
	Name string `json:"name" validate:"required"`
	URL  string `json:"url" validate:"required"`
}

type settingsRequest struct {
	Title              string          `json:"title"`
	Description        string          `json:"description"`
	Keywords           string          `json:"keywords"`
	OGTitle            string          `json:"ogTitle"`
	OGDescription      string          `json:"ogDescription"`
	OGImage            string          `json:"ogImage"`
	TwitterTitle       string          `json:"twitterTitle"`
	TwitterDescription string          `json:"twitterDescription"`
	TwitterImage       string          `json:"twitterImage"`
	Favicon            string          `json:"favicon"`
	GoogleAnalytics    string          `json:"googleAnalytics"`
	FacebookPixel      string          `json:"facebookPixel"`
	FooterText         string          `json:"footerText"`
	FooterLinks        []footerLinkDTO `json:"footerLinks" validate:"omitempty,dive"`
	AdminPath          string          `json:"adminPath"`
}

type settingsResponse struct {
	Title              string          `json:"title"`
	Description        string          `json:"description"`
	Keywords           string          `json:"keywords"`
	OGTitle            string          `json:"ogTitle"`
	OGDescription      string          `json:"ogDescription"`
	OGImage            string          `json:"ogImage"`
	TwitterTitle       string          `json:"twitterTitle"`
	TwitterDescription string          `json:"twitterDescription"`
	TwitterImage       string          `json:"twitterImage"`
	Favicon            string          `json:"favicon"`
	GoogleAnalytics    string          `json:"googleAnalytics"`
	FacebookPixel      string          `json:"facebookPixel"`
	FooterText         string          `json:"footerText"`
	FooterLinks        []footerLinkDTO `json:"footerLinks"`
	AdminPath          string          `json:"adminPath"`
}

func (h *Handler) GetSettings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetSettings")
	defer span.End()

	current, err := h.settingsService.GetSettings(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "load settings failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, toSettingsResponse(current))
}

func (h *Handler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateSettings")
	defer span.End()

	var req settingsRequest
	if err := h.decodeRequest(r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	updated, err := h.settingsService.UpdateSettings(ctx, req.toPatch())
	if err != nil {
		h.logger.WarnContext(ctx, "settings update failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, toSettingsResponse(updated))
}

func (r settingsRequest) toPatch() settings.Settings {
	patch := settings.Settings{
		Title:              r.Title,
		Description:        r.Description,
		Keywords:           r.Keywords,
		OGTitle:            r.OGTitle,
		OGDescription:      r.OGDescription,
		OGImage:            r.OGImage,
		TwitterTitle:       r.TwitterTitle,
		TwitterDescription: r.TwitterDescription,
		TwitterImage:       r.TwitterImage,
		Favicon:            r.Favicon,
		GoogleAnalytics:    r.GoogleAnalytics,
		FacebookPixel:      r.FacebookPixel,
		FooterText:         r.FooterText,
		AdminPath:          r.AdminPath,
	}
	if r.FooterLinks != nil {
		patch.FooterLinks = make([]settings.FooterLink, 0, len(r.FooterLinks))
		for _, link := range r.FooterLinks {
			patch.FooterLinks = append(patch.FooterLinks, settings.FooterLink{Name: link.Name, URL: link.URL})
		}
	}
	return patch
}

func toSettingsResponse(s settings.Settings) settingsResponse {
	out := settingsResponse{
		Title:              s.Title,
		Description:        s.Description,
		Keywords:           s.Keywords,
		OGTitle:            s.OGTitle,
		OGDescription:      s.OGDescription,
		OGImage:            s.OGImage,
		TwitterTitle:       s.TwitterTitle,
		TwitterDescription: s.TwitterDescription,
		TwitterImage:       s.TwitterImage,
		Favicon:            s.Favicon,
		GoogleAnalytics:    s.GoogleAnalytics,
		FacebookPixel:      s.FacebookPixel,
		FooterText:         s.FooterText,
		AdminPath:          s.AdminPath,
		FooterLinks:        make([]footerLinkDTO, 0, len(s.FooterLinks)),
	}
	for _, link := range s.FooterLinks {
		out.FooterLinks = append(out.FooterLinks, footerLinkDTO{Name: link.Name, URL: link.URL})
	}
	return out
}
