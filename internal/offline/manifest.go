package offline

// Third-party assets the dashboard loads
const (
	ChartLibraryURL = "https://cdn.jsdelivr.net/npm/chart.js"
	IconFontURL     = "https://cdnjs.cloudflare.com/ajax/libs/font-awesome/6.4.0/css/all.min.css"
	WebFontURL      = "https://fonts.googleapis.com/css2?family=Inter:wght@400;500;600;700&display=swap"
)

var localAssets = []string{
	"/",
	"/index.html",
	"/css/style.css",
	"/js/app.js",
	"/manifest.json",
	"/assets/icon-192.png",
	"/assets/icon-512.png",
}

var remoteAssets = []string{
	ChartLibraryURL,
	IconFontURL,
	WebFontURL,
}

// DefaultManifest returns the URLs pre-cached on install
func DefaultManifest(includeRemote bool) []string {
	manifest := append([]string(nil), localAssets...)
	if includeRemote {
		manifest = append(manifest, remoteAssets...)
	}
	return manifest
}
