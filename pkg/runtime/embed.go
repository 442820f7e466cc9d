// Package runtime ships the browser assets of the enhanced picker. The script
// enhances every element carrying the model.PickerClass marker and restores
// multiselect defaults from the data-default attribute.
package runtime

import (
	"crypto/sha256"
	"embed"
	"encoding/hex"
	"io/fs"
	"sync"
)

const (
	// ScriptName is the picker script file inside AssetsFS.
	ScriptName = "settingstab-picker.js"
	// StyleName is the picker stylesheet file inside AssetsFS.
	StyleName = "settingstab-picker.css"

	// ScriptHandle and StyleHandle are the enqueue handles.
	ScriptHandle = "settingstab-picker"
	StyleHandle  = "settingstab-picker"
)

// ScriptDeps are the handles the picker script needs loaded first.
var ScriptDeps = []string{"jquery", "selectWoo"}

//go:embed assets/*.js assets/*.css
var embedded embed.FS

var (
	versionOnce sync.Once
	version     string
)

// AssetsFS exposes the picker assets rooted at the assets directory.
//
// Typical mount:
//
//	mux.Handle("/settingstab/",
//	  http.StripPrefix("/settingstab/",
//	    http.FileServerFS(runtime.AssetsFS()),
//	  ),
//	)
func AssetsFS() fs.FS {
	sub, err := fs.Sub(embedded, "assets")
	if err != nil {
		return embedded
	}
	return sub
}

// Version is a short content hash of the bundled assets, suitable as the
// enqueue version so browsers refetch after an upgrade.
func Version() string {
	versionOnce.Do(func() {
		h := sha256.New()
		for _, name := range []string{ScriptName, StyleName} {
			data, err := fs.ReadFile(AssetsFS(), name)
			if err != nil {
				continue
			}
			h.Write([]byte(name))
			h.Write(data)
		}
		version = hex.EncodeToString(h.Sum(nil))[:12]
	})
	return version
}

// URL joins base and an asset name.
func URL(base, name string) string {
	if base == "" {
		return name
	}
	if base[len(base)-1] == '/' {
		return base + name
	}
	return base + "/" + name
}
