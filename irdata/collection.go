// Package irdata holds the factory cabinet impulse responses embedded in
// the firmware image. The sample arrays in irdata.go are generated by
// cmd/ir-embed from 48 kHz mono WAV captures; this file names them and
// assembles the selector catalog.
package irdata

import "github.com/cwbudde/mulebox/pedal"

// Collection returns the factory catalog in selector order. The returned
// kernels alias the embedded arrays; callers must not mutate them.
func Collection() pedal.Catalog {
	return pedal.Catalog{
		{Name: "112-open", Samples: cab112Open},
		{Name: "112-closed", Samples: cab112Closed},
		{Name: "110-bright", Samples: cab110Bright},
		{Name: "212-vintage", Samples: cab212Vintage},
		{Name: "212-modern", Samples: cab212Modern},
		{Name: "412-big", Samples: cab412Big},
		{Name: "412-dark", Samples: cab412Dark},
		{Name: "115-tight", Samples: cab115Tight},
	}
}
