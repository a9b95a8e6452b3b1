package mmio

import "fmt"

// Pin is a GPIO pin routed to an LTDC signal.
type Pin struct {
	Port   byte  // 'A' to 'K'
	Num    uint8 // 0 to 15
	AF     uint8 // alternate function
	Signal string
}

func (p Pin) String() string {
	return fmt.Sprintf("P%c%d (%s)", p.Port, p.Num, p.Signal)
}

func (p Pin) port() uintptr {
	return uintptr(p.Port - 'A')
}

// DiscoPins are the LTDC signals of the STM32F746G discovery board.
var DiscoPins = []Pin{
	{'E', 4, 14, "B0"},
	{'G', 12, 9, "B4"},
	{'I', 9, 14, "VSYNC"},
	{'I', 10, 14, "HSYNC"},
	{'I', 13, 14, "VSYNC_ALT"}, // alternate VSYNC mapping
	{'I', 14, 14, "CLK"},
	{'I', 15, 14, "R0"},
	{'J', 0, 14, "R1"},
	{'J', 1, 14, "R2"},
	{'J', 2, 14, "R3"},
	{'J', 3, 14, "R4"},
	{'J', 4, 14, "R5"},
	{'J', 5, 14, "R6"},
	{'J', 6, 14, "R7"},
	{'J', 7, 14, "G0"},
	{'J', 8, 14, "G1"},
	{'J', 9, 14, "G2"},
	{'J', 10, 14, "G3"},
	{'J', 11, 14, "G4"},
	{'J', 13, 14, "B1"},
	{'J', 14, 14, "B2"},
	{'J', 15, 14, "B3"},
	{'K', 0, 14, "G5"},
	{'K', 1, 14, "G6"},
	{'K', 2, 14, "G7"},
	{'K', 4, 14, "B5"},
	{'K', 5, 14, "B6"},
	{'K', 6, 14, "B7"},
	{'K', 7, 14, "DE"},
}
