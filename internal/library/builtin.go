package library

import "strings"

// Board units are micrometres.
const builtinYAML = `
presets:
  - name: "0603"
    sym: resistor
    body: chip
    pin_d: 800
    body_corner: [800, 400]
    pin_corner: [400, 450]
  - name: "0805"
    sym: resistor
    body: chip
    pin_d: 950
    body_corner: [1000, 625]
    pin_corner: [500, 700]
  - name: "1206"
    sym: capacitor
    body: chip
    pin_d: 1500
    body_corner: [1600, 800]
    pin_corner: [600, 900]
  - name: axial-400
    sym: resistor
    body: th_axial
    pin_d: 5080
    body_corner: [3200, 1200]
    pin_corner: [800, 800]
  - name: radial-5mm
    sym: capacitor_polarized
    body: th_radial
    pin_d: 1000
    body_corner: [2500, 2500]
    pin_corner: [700, 700]
  - name: smd-can-6.3
    sym: capacitor_polarized
    body: smd_cap
    pin_d: 2350
    body_corner: [3300, 3300]
    pin_corner: [1300, 500]
  - name: do-41
    sym: diode
    body: th_axial
    pin_d: 5080
    body_corner: [2600, 1350]
    pin_corner: [900, 900]
`

// Default returns the built-in preset library.
func Default() *Library {
	lib, err := Parse(strings.NewReader(builtinYAML))
	if err != nil {
		panic("library: bad built-in presets: " + err.Error())
	}
	return lib
}
