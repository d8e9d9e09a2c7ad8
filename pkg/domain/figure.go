package domain

// Figure is a chart description in the shape plotly.js consumes directly.
// The Go side only decides WHAT is drawn (traces, order, colors); pixels are
// the rendering library's problem.
type Figure struct {
	Data   []Trace `json:"data"`
	Layout Layout  `json:"layout"`
}

// Trace is one data series of a figure. X and Y are loosely typed because
// the bar chart uses categorical Y values (state names) while the line
// chart uses numeric ones (counts).
type Trace struct {
	Type        string  `json:"type"`
	Name        string  `json:"name"`
	X           []any   `json:"x"`
	Y           []any   `json:"y"`
	Orientation string  `json:"orientation,omitempty"`
	Mode        string  `json:"mode,omitempty"`
	Marker      *Marker `json:"marker,omitempty"`
	Line        *Line   `json:"line,omitempty"`
}

// Marker styles the discrete glyphs of a trace.
type Marker struct {
	Color string `json:"color,omitempty"`
}

// Line styles the connecting line of a scatter trace.
type Line struct {
	Color string `json:"color,omitempty"`
	Width int    `json:"width,omitempty"`
}

// Layout carries the figure-level presentation settings.
type Layout struct {
	Title     string  `json:"title,omitempty"`
	Barmode   string  `json:"barmode,omitempty"`
	Height    int     `json:"height,omitempty"`
	HoverMode string  `json:"hovermode,omitempty"`
	XAxis     *Axis   `json:"xaxis,omitempty"`
	YAxis     *Axis   `json:"yaxis,omitempty"`
	Legend    *Legend `json:"legend,omitempty"`
	Margin    *Margin `json:"margin,omitempty"`
}

// Axis configures one figure axis.
type Axis struct {
	Title         string `json:"title,omitempty"`
	CategoryOrder string `json:"categoryorder,omitempty"`
}

// Legend configures the figure legend.
type Legend struct {
	Title LegendTitle `json:"title"`
}

// LegendTitle is the nested legend title object plotly expects.
type LegendTitle struct {
	Text string `json:"text"`
}

// Margin is the figure margin in pixels.
type Margin struct {
	L int `json:"l"`
	R int `json:"r"`
	T int `json:"t"`
	B int `json:"b"`
}
