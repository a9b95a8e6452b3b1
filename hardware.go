package ltdc

// Hardware is the register level capability of a display controller.
//
// Layer configuration written by ConfigLayer and EnableLayer is pending until
// Reload commits it, so the panel never shows a half configured layer.
type Hardware interface {
	// Init programs the timing generator for config and starts the pixel clock.
	// It may only succeed once per hardware instance.
	Init(config DisplayConfig, format PixelFormat) error

	// ConfigLayer points layer at the framebuffer described by b.
	ConfigLayer(layer Layer, b Binding) error

	// EnableLayer sets or clears the layer enable bit.
	EnableLayer(layer Layer, enable bool) error

	// Reload commits pending layer configuration.
	Reload(mode ReloadMode) error
}

// Filler is implemented by hardware with a fill engine (such as DMA2D in
// register-to-memory mode).
type Filler interface {
	// Fill writes value to every pixel of the framebuffer described by b.
	Fill(b Binding, value uint16) error
}
