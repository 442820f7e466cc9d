// Package host describes the collaborators a settings tab is handed to: the
// option store, the field renderer and option saver, the asset enqueuer, the
// current request, and the tab registry value passed through the tabs
// filter. The tab builder depends only on these interfaces; reference
// implementations live in pkg/store, pkg/admin and pkg/hooks.
package host
