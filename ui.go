package reed

import (
	"bytes"
	"fmt"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"golang.org/x/image/font/basicfont"
)

// Theme is the color and metric palette shared by every widget in a UI.
type Theme struct {
	Primary        Color
	Secondary      Color
	Accent         Color
	Background     Color
	Text           Color
	Error          Color
	Success        Color
	BorderRadius   float64
	Padding        float64
	AnimationSpeed float64 // duration of hover and fill transitions, in seconds
}

// DefaultTheme returns the standard dark palette.
func DefaultTheme() Theme {
	return Theme{
		Primary:        Color{R: 0, G: 120.0 / 255, B: 215.0 / 255, A: 1},
		Secondary:      Color{R: 45.0 / 255, G: 45.0 / 255, B: 45.0 / 255, A: 1},
		Accent:         Color{R: 0, G: 153.0 / 255, B: 204.0 / 255, A: 1},
		Background:     Color{R: 30.0 / 255, G: 30.0 / 255, B: 30.0 / 255, A: 1},
		Text:           Color{R: 1, G: 1, B: 1, A: 1},
		Error:          Color{R: 1, G: 59.0 / 255, B: 48.0 / 255, A: 1},
		Success:        Color{R: 52.0 / 255, G: 199.0 / 255, B: 89.0 / 255, A: 1},
		BorderRadius:   4,
		Padding:        8,
		AnimationSpeed: 0.2,
	}
}

// WidgetID identifies a widget within a UI. IDs are never reused; the zero
// value is invalid.
type WidgetID uint64

// Widget is a UI element managed by a UI. Update reads the UI's input
// snapshot for the current frame; Draw renders with the UI's theme and font.
type Widget interface {
	Update(ui *UI, dt float64)
	Draw(ui *UI, dst *ebiten.Image)
	Bounds() Rect
}

type uiEntry struct {
	id WidgetID
	w  Widget
}

// UI owns an ordered set of widgets, the theme they draw with, and the
// per-frame input snapshot they read. Later widgets draw on top of earlier
// ones; BringToFront reorders.
type UI struct {
	Theme Theme

	face    text.Face
	widgets []uiEntry
	nextID  WidgetID

	// input snapshot, refreshed at the top of Update
	cursor       Vec2
	pressed      bool
	justPressed  bool
	justReleased bool
	typed        []rune
}

// NewUI returns an empty widget manager using theme. Pass DefaultTheme() for
// the standard dark palette. Text renders with a built-in bitmap face until
// SetFont replaces it.
func NewUI(theme Theme) *UI {
	return &UI{
		Theme: theme,
		face:  text.NewGoXFace(basicfont.Face7x13),
	}
}

// LoadTTFFont parses TrueType font data into a face usable with UI.SetFont.
func LoadTTFFont(ttfData []byte, size float64) (text.Face, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(ttfData))
	if err != nil {
		return nil, fmt.Errorf("reed: failed to parse TTF data: %w", err)
	}
	return &text.GoTextFace{Source: source, Size: size}, nil
}

// SetFont replaces the face used for all widget text.
func (u *UI) SetFont(face text.Face) {
	u.face = face
}

// Add appends a widget on top of the existing ones and returns its handle.
// Panics if w is nil.
func (u *UI) Add(w Widget) WidgetID {
	if w == nil {
		panic("reed: nil widget")
	}
	u.nextID++
	u.widgets = append(u.widgets, uiEntry{id: u.nextID, w: w})
	return u.nextID
}

// Remove deletes the widget with the given handle and reports whether it was
// present.
func (u *UI) Remove(id WidgetID) bool {
	for i, e := range u.widgets {
		if e.id == id {
			u.widgets = append(u.widgets[:i], u.widgets[i+1:]...)
			return true
		}
	}
	return false
}

// Widget returns the widget with the given handle, or nil if it was removed.
func (u *UI) Widget(id WidgetID) Widget {
	for _, e := range u.widgets {
		if e.id == id {
			return e.w
		}
	}
	return nil
}

// BringToFront moves the widget with the given handle above all others and
// reports whether it was present.
func (u *UI) BringToFront(id WidgetID) bool {
	for i, e := range u.widgets {
		if e.id == id {
			u.widgets = append(append(u.widgets[:i], u.widgets[i+1:]...), e)
			return true
		}
	}
	return false
}

// Update refreshes the input snapshot and updates every widget. A dropdown
// that opened this frame is raised above the other widgets.
func (u *UI) Update(dt float64) {
	u.cursor = cursorPosition()
	u.pressed = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	u.justPressed = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	u.justReleased = inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft)
	u.typed = ebiten.AppendInputChars(u.typed[:0])

	for i := range u.widgets {
		u.widgets[i].w.Update(u, dt)
	}

	for i := range u.widgets {
		if dd, ok := u.widgets[i].w.(*Dropdown); ok && dd.justOpened {
			dd.justOpened = false
			u.BringToFront(u.widgets[i].id)
			break
		}
	}
}

// Draw renders every widget in z-order.
func (u *UI) Draw(dst *ebiten.Image) {
	for i := range u.widgets {
		u.widgets[i].w.Draw(u, dst)
	}
}

func cursorPosition() Vec2 {
	x, y := ebiten.CursorPosition()
	return Vec2{X: float64(x), Y: float64(y)}
}

func (u *UI) hovered(r Rect) bool {
	return r.Contains(u.cursor.X, u.cursor.Y)
}

func (u *UI) lineHeight() float64 {
	m := u.face.Metrics()
	return m.HAscent + m.HDescent + m.HLineGap
}

func (u *UI) measureText(s string) (float64, float64) {
	return text.Measure(s, u.face, u.lineHeight())
}

func (u *UI) drawText(dst *ebiten.Image, s string, x, y float64, col Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.Scale(
		float32(col.R),
		float32(col.G),
		float32(col.B),
		float32(col.A),
	)
	op.LineSpacing = u.lineHeight()
	text.Draw(dst, s, u.face, op)
}

func fillRect(dst *ebiten.Image, r Rect, col Color) {
	vector.DrawFilledRect(dst, float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height), col.toRGBA(), true)
}

// transition animates a single float toward a retargetable goal.
type transition struct {
	tween  *gween.Tween
	value  float32
	target float32
}

func newTransition(v float64) transition {
	return transition{value: float32(v), target: float32(v)}
}

func (t *transition) retarget(target, duration float64) {
	if float32(target) == t.target {
		return
	}
	t.target = float32(target)
	t.tween = gween.New(t.value, t.target, float32(duration), ease.InOutQuad)
}

func (t *transition) update(dt float64) {
	if t.tween == nil {
		return
	}
	v, finished := t.tween.Update(float32(dt))
	t.value = v
	if finished {
		t.tween = nil
	}
}

func (t *transition) current() float64 { return float64(t.value) }

// lerpColor blends a toward b channel-wise, keeping a's alpha.
func lerpColor(a, b Color, t float64) Color {
	return Color{
		R: a.R + (b.R-a.R)*t,
		G: a.G + (b.G-a.G)*t,
		B: a.B + (b.B-a.B)*t,
		A: a.A,
	}
}

// --- Label ---

// Label is a single line of text anchored at Position according to Align.
type Label struct {
	Position Vec2
	Text     string
	Align    TextAlign
	Color    Color // zero value falls back to the theme text color
}

// NewLabel returns a left-aligned label at position.
func NewLabel(position Vec2, txt string) *Label {
	return &Label{Position: position, Text: txt}
}

// Update is a no-op; labels are static.
func (l *Label) Update(ui *UI, dt float64) {}

// Draw renders the label text.
func (l *Label) Draw(ui *UI, dst *ebiten.Image) {
	col := l.Color
	if col == (Color{}) {
		col = ui.Theme.Text
	}
	w, _ := ui.measureText(l.Text)
	x := l.Position.X
	switch l.Align {
	case TextAlignCenter:
		x -= w / 2
	case TextAlignRight:
		x -= w
	}
	ui.drawText(dst, l.Text, x, l.Position.Y, col)
}

// Bounds returns the rectangle the label text occupies.
func (l *Label) Bounds() Rect {
	// Labels are measured lazily at draw time; the anchor stands in here.
	return Rect{X: l.Position.X, Y: l.Position.Y}
}

// --- Button ---

// Button is a clickable rectangle with centered text. The hover highlight
// eases between the primary and accent colors; pressing sweeps a darkening
// overlay down the face.
type Button struct {
	Rect     Rect
	Text     string
	Disabled bool
	OnClick  func()

	hover transition
	press transition
}

// NewButton returns a button covering bounds. onClick may be nil.
func NewButton(bounds Rect, txt string, onClick func()) *Button {
	return &Button{
		Rect:    bounds,
		Text:    txt,
		OnClick: onClick,
		hover:   newTransition(0),
		press:   newTransition(0),
	}
}

// Update tracks hover and press state and fires OnClick.
func (b *Button) Update(ui *UI, dt float64) {
	speed := ui.Theme.AnimationSpeed
	if b.Disabled {
		b.hover.retarget(0, speed)
		b.press.retarget(0, speed)
	} else {
		over := ui.hovered(b.Rect)
		b.hover.retarget(boolTarget(over), speed)
		b.press.retarget(boolTarget(over && ui.pressed), speed)
		if over && ui.justPressed && b.OnClick != nil {
			b.OnClick()
		}
	}
	b.hover.update(dt)
	b.press.update(dt)
}

// Draw renders the button face and its centered text.
func (b *Button) Draw(ui *UI, dst *ebiten.Image) {
	base := ui.Theme.Primary
	textCol := ui.Theme.Text
	if b.Disabled {
		base = ui.Theme.Secondary
		textCol = Color{R: 0.5, G: 0.5, B: 0.5, A: 1}
	}
	fillRect(dst, b.Rect, lerpColor(base, ui.Theme.Accent, b.hover.current()))

	if press := b.press.current(); press > 0 {
		overlay := b.Rect
		overlay.Height *= press
		fillRect(dst, overlay, Color{A: 0.2})
	}

	tw, th := ui.measureText(b.Text)
	ui.drawText(dst, b.Text,
		b.Rect.X+(b.Rect.Width-tw)/2,
		b.Rect.Y+(b.Rect.Height-th)/2,
		textCol)
}

// Bounds returns the button rectangle.
func (b *Button) Bounds() Rect { return b.Rect }

func boolTarget(v bool) float64 {
	if v {
		return 1
	}
	return 0
}

// --- TextInput ---

const inputBlinkPeriod = 1.0 // seconds for one on/off caret cycle

// TextInput is a focusable single-line text field. Clicking it grabs
// keyboard input; clicking anywhere else releases it.
type TextInput struct {
	Rect        Rect
	Text        string
	Placeholder string

	focused bool
	cursor  int // rune offset into Text
	blink   float64
}

// NewTextInput returns an empty input covering bounds.
func NewTextInput(bounds Rect, placeholder string) *TextInput {
	return &TextInput{Rect: bounds, Placeholder: placeholder}
}

// Focused reports whether the input currently receives keyboard input.
func (t *TextInput) Focused() bool { return t.focused }

// Update handles focus changes and keyboard editing.
func (t *TextInput) Update(ui *UI, dt float64) {
	if ui.justPressed {
		t.focused = ui.hovered(t.Rect)
		t.blink = 0
	}
	if !t.focused {
		return
	}
	t.blink += dt

	runes := []rune(t.Text)
	if t.cursor > len(runes) {
		t.cursor = len(runes)
	}

	for _, r := range ui.typed {
		runes = append(runes[:t.cursor], append([]rune{r}, runes[t.cursor:]...)...)
		t.cursor++
		t.blink = 0
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBackspace) && t.cursor > 0 {
		runes = append(runes[:t.cursor-1], runes[t.cursor:]...)
		t.cursor--
		t.blink = 0
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyLeft) && t.cursor > 0 {
		t.cursor--
		t.blink = 0
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyRight) && t.cursor < len(runes) {
		t.cursor++
		t.blink = 0
	}
	t.Text = string(runes)
}

// Draw renders the field, its text or placeholder, and the caret.
func (t *TextInput) Draw(ui *UI, dst *ebiten.Image) {
	fillRect(dst, t.Rect, ui.Theme.Secondary)
	if t.focused {
		border := t.Rect
		border.Y += border.Height - 2
		border.Height = 2
		fillRect(dst, border, ui.Theme.Accent)
	}

	pad := ui.Theme.Padding
	_, lh := ui.measureText("M")
	textY := t.Rect.Y + (t.Rect.Height-lh)/2

	if t.Text == "" && !t.focused {
		placeholderCol := ui.Theme.Text
		placeholderCol.A = 0.4
		ui.drawText(dst, t.Placeholder, t.Rect.X+pad, textY, placeholderCol)
		return
	}

	ui.drawText(dst, t.Text, t.Rect.X+pad, textY, ui.Theme.Text)

	if t.focused && math.Mod(t.blink, inputBlinkPeriod) < inputBlinkPeriod/2 {
		runes := []rune(t.Text)
		cursor := t.cursor
		if cursor > len(runes) {
			cursor = len(runes)
		}
		before, _ := ui.measureText(string(runes[:cursor]))
		caret := Rect{X: t.Rect.X + pad + before, Y: textY, Width: 1, Height: lh}
		fillRect(dst, caret, ui.Theme.Text)
	}
}

// Bounds returns the input rectangle.
func (t *TextInput) Bounds() Rect { return t.Rect }

// --- Slider ---

// Slider selects a value in [Min, Max] by dragging a round handle along a
// horizontal track. Rect is the track; the grab area extends a full track
// height above and below it.
type Slider struct {
	Rect     Rect
	Min, Max float64
	Value    float64
	OnChange func(float64)

	dragging bool
}

// NewSlider returns a slider over bounds with the given range and starting
// value.
func NewSlider(bounds Rect, min, max, value float64) *Slider {
	return &Slider{Rect: bounds, Min: min, Max: max, Value: value}
}

// Update handles dragging.
func (s *Slider) Update(ui *UI, dt float64) {
	grab := Rect{
		X:      s.Rect.X,
		Y:      s.Rect.Y - s.Rect.Height/2,
		Width:  s.Rect.Width,
		Height: s.Rect.Height * 2,
	}
	if ui.justPressed && grab.Contains(ui.cursor.X, ui.cursor.Y) {
		s.dragging = true
	}
	if !ui.pressed {
		s.dragging = false
	}
	if !s.dragging || s.Rect.Width <= 0 {
		return
	}

	t := clamp01((ui.cursor.X - s.Rect.X) / s.Rect.Width)
	v := s.Min + t*(s.Max-s.Min)
	if v != s.Value {
		s.Value = v
		if s.OnChange != nil {
			s.OnChange(v)
		}
	}
}

// Draw renders the track, the filled portion, and the handle.
func (s *Slider) Draw(ui *UI, dst *ebiten.Image) {
	fillRect(dst, s.Rect, ui.Theme.Secondary)

	t := 0.0
	if s.Max != s.Min {
		t = clamp01((s.Value - s.Min) / (s.Max - s.Min))
	}
	filled := s.Rect
	filled.Width *= t
	fillRect(dst, filled, ui.Theme.Primary)

	handleX := s.Rect.X + s.Rect.Width*t
	handleY := s.Rect.Y + s.Rect.Height/2
	vector.DrawFilledCircle(dst, float32(handleX), float32(handleY),
		float32(s.Rect.Height*1.5), ui.Theme.Accent.toRGBA(), true)
}

// Bounds returns the track rectangle.
func (s *Slider) Bounds() Rect { return s.Rect }

// --- Checkbox ---

// Checkbox is a toggleable square with a label to its right.
type Checkbox struct {
	Position Vec2
	Size     float64
	Label    string
	Checked  bool
	OnToggle func(bool)
}

// NewCheckbox returns an unchecked box at position.
func NewCheckbox(position Vec2, size float64, label string) *Checkbox {
	return &Checkbox{Position: position, Size: size, Label: label}
}

// Update toggles on click.
func (c *Checkbox) Update(ui *UI, dt float64) {
	if ui.justPressed && ui.hovered(c.Bounds()) {
		c.Checked = !c.Checked
		if c.OnToggle != nil {
			c.OnToggle(c.Checked)
		}
	}
}

// Draw renders the box, the checkmark when set, and the label.
func (c *Checkbox) Draw(ui *UI, dst *ebiten.Image) {
	box := Rect{X: c.Position.X, Y: c.Position.Y, Width: c.Size, Height: c.Size}
	fillRect(dst, box, ui.Theme.Secondary)

	if c.Checked {
		// Two strokes form the checkmark inside the middle 60% of the box.
		inset := c.Size * 0.2
		x := c.Position.X
		y := c.Position.Y
		col := ui.Theme.Success.toRGBA()
		vector.StrokeLine(dst,
			float32(x+inset), float32(y+c.Size*0.55),
			float32(x+c.Size*0.42), float32(y+c.Size-inset),
			2, col, true)
		vector.StrokeLine(dst,
			float32(x+c.Size*0.42), float32(y+c.Size-inset),
			float32(x+c.Size-inset), float32(y+inset),
			2, col, true)
	}

	_, lh := ui.measureText("M")
	ui.drawText(dst, c.Label,
		c.Position.X+c.Size+ui.Theme.Padding,
		c.Position.Y+(c.Size-lh)/2,
		ui.Theme.Text)
}

// Bounds returns the clickable box rectangle, excluding the label.
func (c *Checkbox) Bounds() Rect {
	return Rect{X: c.Position.X, Y: c.Position.Y, Width: c.Size, Height: c.Size}
}

// --- Panel ---

const panelTitleHeight = 30.0

// Panel is a background rectangle with a title bar, drawn behind whatever
// widgets are placed over it. It handles no input.
type Panel struct {
	Rect  Rect
	Title string
}

// NewPanel returns a panel covering bounds.
func NewPanel(bounds Rect, title string) *Panel {
	return &Panel{Rect: bounds, Title: title}
}

// Update is a no-op; panels are static.
func (p *Panel) Update(ui *UI, dt float64) {}

// Draw renders the panel background and its title bar.
func (p *Panel) Draw(ui *UI, dst *ebiten.Image) {
	fillRect(dst, p.Rect, ui.Theme.Background)

	bar := p.Rect
	bar.Height = panelTitleHeight
	fillRect(dst, bar, ui.Theme.Secondary)

	_, lh := ui.measureText("M")
	ui.drawText(dst, p.Title,
		p.Rect.X+ui.Theme.Padding,
		p.Rect.Y+(panelTitleHeight-lh)/2,
		ui.Theme.Text)
}

// Bounds returns the panel rectangle.
func (p *Panel) Bounds() Rect { return p.Rect }

// --- ProgressBar ---

// ProgressBar shows a fraction in [0, 1] as a filled track. The fill eases
// toward new values instead of jumping.
type ProgressBar struct {
	Rect Rect

	fill transition
}

// NewProgressBar returns a bar covering bounds showing value.
func NewProgressBar(bounds Rect, value float64) *ProgressBar {
	return &ProgressBar{Rect: bounds, fill: newTransition(clamp01(value))}
}

// SetValue eases the fill toward v, clamped to [0, 1].
func (p *ProgressBar) SetValue(ui *UI, v float64) {
	p.fill.retarget(clamp01(v), ui.Theme.AnimationSpeed)
}

// Value returns the fraction the fill is heading toward.
func (p *ProgressBar) Value() float64 { return float64(p.fill.target) }

// Update advances the fill animation.
func (p *ProgressBar) Update(ui *UI, dt float64) {
	p.fill.update(dt)
}

// Draw renders the track and the eased fill.
func (p *ProgressBar) Draw(ui *UI, dst *ebiten.Image) {
	fillRect(dst, p.Rect, ui.Theme.Secondary)
	filled := p.Rect
	filled.Width *= clamp01(p.fill.current())
	fillRect(dst, filled, ui.Theme.Primary)
}

// Bounds returns the bar rectangle.
func (p *ProgressBar) Bounds() Rect { return p.Rect }

// --- Dropdown ---

// Dropdown shows the selected option and, when open, a list of all options
// below it over a dimmed backdrop. Opening it raises it above the other
// widgets.
type Dropdown struct {
	Rect     Rect
	Options  []string
	Selected int
	OnSelect func(int)

	open       bool
	justOpened bool
	hover      transition
}

// NewDropdown returns a closed dropdown covering bounds with the first
// option selected.
func NewDropdown(bounds Rect, options []string) *Dropdown {
	return &Dropdown{Rect: bounds, Options: options, hover: newTransition(0)}
}

// Open reports whether the option list is showing.
func (d *Dropdown) Open() bool { return d.open }

// Update handles opening, option picking, and outside-click dismissal.
func (d *Dropdown) Update(ui *UI, dt float64) {
	d.hover.retarget(boolTarget(ui.hovered(d.Rect)), ui.Theme.AnimationSpeed)
	d.hover.update(dt)

	if !ui.justPressed {
		return
	}

	if !d.open {
		if ui.hovered(d.Rect) {
			d.open = true
			d.justOpened = true
		}
		return
	}

	for i := range d.Options {
		if ui.hovered(d.optionRect(i)) {
			d.Selected = i
			d.open = false
			if d.OnSelect != nil {
				d.OnSelect(i)
			}
			return
		}
	}
	// Any click not on an option closes the list, including one on the
	// header itself.
	d.open = false
}

// Draw renders the header and, when open, the backdrop and option list.
func (d *Dropdown) Draw(ui *UI, dst *ebiten.Image) {
	if d.open {
		b := dst.Bounds()
		fillRect(dst, Rect{
			X:      float64(b.Min.X),
			Y:      float64(b.Min.Y),
			Width:  float64(b.Dx()),
			Height: float64(b.Dy()),
		}, Color{A: 0.3})
	}

	fillRect(dst, d.Rect, lerpColor(ui.Theme.Secondary, ui.Theme.Accent, d.hover.current()))

	pad := ui.Theme.Padding
	_, lh := ui.measureText("M")
	if d.Selected >= 0 && d.Selected < len(d.Options) {
		ui.drawText(dst, d.Options[d.Selected],
			d.Rect.X+pad, d.Rect.Y+(d.Rect.Height-lh)/2, ui.Theme.Text)
	}

	if !d.open {
		return
	}
	for i, opt := range d.Options {
		row := d.optionRect(i)
		col := ui.Theme.Secondary
		if ui.hovered(row) {
			col = ui.Theme.Accent
		}
		fillRect(dst, row, col)
		ui.drawText(dst, opt, row.X+pad, row.Y+(row.Height-lh)/2, ui.Theme.Text)
	}
}

// Bounds returns the header rectangle; the open option list extends below
// it.
func (d *Dropdown) Bounds() Rect { return d.Rect }

func (d *Dropdown) optionRect(i int) Rect {
	return Rect{
		X:      d.Rect.X,
		Y:      d.Rect.Y + d.Rect.Height*float64(i+1),
		Width:  d.Rect.Width,
		Height: d.Rect.Height,
	}
}
