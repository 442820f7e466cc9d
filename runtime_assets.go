package settingstab

import (
	"io/fs"

	"github.com/goliatone/go-settingstab/pkg/runtime"
)

// RuntimeAssetsFS exposes the enhanced picker script and stylesheet so Go
// applications can serve them without a build step.
//
// Typical mount:
//
//	mux.Handle("/settingstab/",
//	  http.StripPrefix("/settingstab/",
//	    http.FileServerFS(settingstab.RuntimeAssetsFS()),
//	  ),
//	)
func RuntimeAssetsFS() fs.FS {
	return runtime.AssetsFS()
}
