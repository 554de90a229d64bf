package templates

// DashboardData populates the dashboard page's controls. Everything here
// is derived from the dataset once at startup; the page itself carries
// no server-side state between requests.
type DashboardData struct {
	NumericCols []string
	AllCols     []string
	Teams       []string
	Players     []string
	DefaultX    string
	DefaultY    string
}
