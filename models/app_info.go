package models

// AppInfo is the body returned by the version endpoint.
type AppInfo struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}
