package host

import (
	"context"
	"fmt"
	"html/template"
	"strings"
	"sync"
)

// AssetQueue is an in-memory AssetEnqueuer. Handles are enqueued once; later
// calls with the same handle are ignored, matching the host behaviour.
type AssetQueue struct {
	mu      sync.Mutex
	styles  []Style
	scripts []Script
}

// NewAssetQueue returns an empty queue.
func NewAssetQueue() *AssetQueue {
	return &AssetQueue{}
}

// EnqueueStyle implements AssetEnqueuer.
func (q *AssetQueue) EnqueueStyle(_ context.Context, style Style) error {
	if strings.TrimSpace(style.Handle) == "" {
		return fmt.Errorf("host: style handle is required")
	}
	q.mu.Lock()
	defer q.mu.Unlock()
	for _, existing := range q.styles {
		if existing.Handle == style.Handle {
			return nil
		}
	}
	q.styles = append(q.styles, style)
	return nil
}

// EnqueueScript implements AssetEnqueuer.
func (q *AssetQueue) EnqueueScript(_ context.Context, script Script) error {
	if strings.TrimSpace(script.Handle) == "" {
		return fmt.Errorf("host: script handle is required")
	}
	q.mu.Lock()
	defer q.mu.Unlock()
	for _, existing := range q.scripts {
		if existing.Handle == script.Handle {
			return nil
		}
	}
	q.scripts = append(q.scripts, script)
	return nil
}

// Styles returns the enqueued styles in order.
func (q *AssetQueue) Styles() []Style {
	q.mu.Lock()
	defer q.mu.Unlock()
	return append([]Style(nil), q.styles...)
}

// Scripts returns the enqueued scripts in order.
func (q *AssetQueue) Scripts() []Script {
	q.mu.Lock()
	defer q.mu.Unlock()
	return append([]Script(nil), q.scripts...)
}

// Empty reports whether nothing was enqueued.
func (q *AssetQueue) Empty() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.styles) == 0 && len(q.scripts) == 0
}

// HeadTags renders link tags for the styles and script tags for scripts not
// marked InFooter.
func (q *AssetQueue) HeadTags() template.HTML {
	var b strings.Builder
	for _, style := range q.Styles() {
		fmt.Fprintf(&b, `<link rel="stylesheet" id="%s-css" href="%s">`+"\n",
			template.HTMLEscapeString(style.Handle), template.HTMLEscapeString(versioned(style.Src, style.Version)))
	}
	for _, script := range q.Scripts() {
		if script.InFooter {
			continue
		}
		writeScriptTag(&b, script)
	}
	return template.HTML(b.String())
}

// FooterTags renders script tags marked InFooter.
func (q *AssetQueue) FooterTags() template.HTML {
	var b strings.Builder
	for _, script := range q.Scripts() {
		if script.InFooter {
			writeScriptTag(&b, script)
		}
	}
	return template.HTML(b.String())
}

func writeScriptTag(b *strings.Builder, script Script) {
	fmt.Fprintf(b, `<script id="%s-js" src="%s"></script>`+"\n",
		template.HTMLEscapeString(script.Handle), template.HTMLEscapeString(versioned(script.Src, script.Version)))
}

func versioned(src, version string) string {
	if version == "" {
		return src
	}
	sep := "?"
	if strings.Contains(src, "?") {
		sep = "&"
	}
	return src + sep + "ver=" + version
}
