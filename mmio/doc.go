// Package mmio drives the STM32F7 LTDC, DMA2D and their clocks by writing the
// peripheral registers directly.
//
// The register code only builds with TinyGo for stm32f7 targets; the clock
// planning and pin tables are portable.
package mmio
