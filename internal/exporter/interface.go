package exporter

// Exporter renders a markdown summary into a downloadable document.
type Exporter interface {
	Export(title, markdown string) ([]byte, error)
}
