package league

// Config describes one competition available for provider sync.
type Config struct {
	ID       string
	Name     string
	Country  string
	Enabled  bool
	Priority int
	// ProviderID is the numeric league id used by the fixtures API.
	ProviderID int64
}
