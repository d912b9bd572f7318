package catalog

import "strings"

const (
	csvMarker     = "output=csv"
	pubHTMLMarker = "/pubhtml"
	pubMarker     = "/pub"
)

// ToCSVURL rewrites a Google Sheets "publish to web" page URL into its CSV
// export. URLs already asking for CSV, and anything else, pass through.
func ToCSVURL(url string) string {
	if url == "" || strings.Contains(url, csvMarker) {
		return url
	}
	if !strings.Contains(url, pubHTMLMarker) {
		return url
	}

	url = strings.ReplaceAll(url, pubHTMLMarker, pubMarker)
	sep := "?"
	if strings.Contains(url, "?") {
		sep = "&"
	}
	return url + sep + csvMarker
}
