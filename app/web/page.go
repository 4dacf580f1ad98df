package web

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"sync"

	"github.com/Semior001/newsreader/app/view"
)

//go:embed templates
var templates embed.FS

var pageTmpl = template.Must(template.ParseFS(templates, "templates/index.html"))

// Page is an in-memory document, rendered to HTML on every request.
// It is safe for concurrent use.
type Page struct {
	mu      sync.RWMutex
	cards   []view.Card
	errors  []string
	overlay view.Overlay
	visible bool
	onClose func()
}

// ClearArticles removes all rendered articles.
func (p *Page) ClearArticles() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.cards = nil
}

// AppendArticle appends an article card to the list.
func (p *Page) AppendArticle(card view.Card) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.cards = append(p.cards, card)
}

// AppendError appends an error banner.
func (p *Page) AppendError(msg string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.errors = append(p.errors, msg)
}

// ShowOverlay shows the overlay and binds its close control to onClose.
func (p *Page) ShowOverlay(o view.Overlay, onClose func()) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.overlay, p.visible, p.onClose = o, true, onClose
}

// SetSummary replaces the summary placeholder in the overlay.
func (p *Page) SetSummary(text string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.overlay.Summary, p.overlay.Pending = text, false
}

// HideOverlay hides the overlay.
func (p *Page) HideOverlay() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.visible = false
}

// Close activates the close control of the overlay, if it is shown.
func (p *Page) Close() {
	p.mu.Lock()
	onClose := p.onClose
	if !p.visible {
		onClose = nil
	}
	p.mu.Unlock()

	// must be called without the lock, the handler updates the page
	if onClose != nil {
		onClose()
	}
}

type pageData struct {
	Term           string
	Sections       []view.Section
	Cards          []view.Card
	Errors         []string
	Overlay        view.Overlay
	OverlayVisible bool
}

// Render writes the page as an HTML document.
func (p *Page) Render(w io.Writer, term string) error {
	p.mu.RLock()
	data := pageData{
		Term:           term,
		Sections:       view.Sections,
		Cards:          append([]view.Card(nil), p.cards...),
		Errors:         append([]string(nil), p.errors...),
		Overlay:        p.overlay,
		OverlayVisible: p.visible,
	}
	p.mu.RUnlock()

	if err := pageTmpl.Execute(w, data); err != nil {
		return fmt.Errorf("execute page template: %w", err)
	}

	return nil
}
