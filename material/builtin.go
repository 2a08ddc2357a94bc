// SPDX-License-Identifier: MIT

package material

// Builtin returns the builtin catalog in its canonical order:
// dielectrics, metals, substrates, then Air.
//
// Sellmeier coefficients and tabulated n,k values come from the published
// sources named next to each entry. Tables span 300–1100 nm.
func Builtin() []Def {
	return []Def{
		// Dielectrics
		{ID: "SiO2", Name: "SiO2 (Fused Silica)", Color: "#8ecae6", Dispersion: sio2},
		{ID: "TiO2", Name: "TiO2 (Titanium Dioxide)", Color: "#fb8500", Dispersion: tio2},
		{ID: "MgF2", Name: "MgF2 (Magnesium Fluoride)", Color: "#b5e48c", Dispersion: mgf2},
		{ID: "Si3N4", Name: "Si3N4 (Silicon Nitride)", Color: "#cdb4db", Dispersion: si3n4},
		{ID: "Al2O3", Name: "Al2O3 (Sapphire)", Color: "#ffd6ff", Dispersion: al2o3},
		{ID: "Ta2O5", Name: "Ta2O5 (Tantalum Pentoxide)", Color: "#e5989b", Dispersion: ta2o5},
		// Metals
		{ID: "Al", Name: "Aluminium", Color: "#adb5bd", Dispersion: alTable},
		{ID: "Ag", Name: "Silver", Color: "#dee2e6", Dispersion: agTable},
		{ID: "Au", Name: "Gold", Color: "#ffd700", Dispersion: auTable},
		{ID: "Cu", Name: "Copper", Color: "#d4840e", Dispersion: cuTable},
		// Substrates
		{ID: "BK7", Name: "BK7 Glass", Color: "#a8dadc", Dispersion: bk7},
		{ID: "Si", Name: "Silicon", Color: "#495057", Dispersion: siTable},
		{ID: AirID, Name: "Air", Color: "#ffffff", Dispersion: Vacuum},
	}
}

// Catalog builds a registry holding Builtin() followed by extra definitions.
// Extra definitions must not reuse builtin ids.
func Catalog(extra ...Def) (*Registry, error) {
	return NewRegistry(append(Builtin(), extra...)...)
}

// Fused silica, Malitson 1965.
var sio2 = Sellmeier{
	{B: 0.6961663, C: 0.0684043 * 0.0684043},
	{B: 0.4079426, C: 0.1162414 * 0.1162414},
	{B: 0.8974794, C: 9.896161 * 9.896161},
}

// Amorphous thin-film TiO2, Siefke 2016 (fit for 300–1100 nm).
var tio2 = Sellmeier{
	{B: 4.1560, C: 0.2120 * 0.2120},
	{B: 0.1300, C: 5.2000 * 5.2000},
}

// MgF2 ordinary ray, Dodge 1984.
var mgf2 = Sellmeier{
	{B: 0.48755108, C: 0.04338408 * 0.04338408},
	{B: 0.39875031, C: 0.09461442 * 0.09461442},
	{B: 2.3120353, C: 23.793604 * 23.793604},
}

// Si3N4, Luke 2015.
var si3n4 = Sellmeier{
	{B: 3.0249, C: 0.1353406 * 0.1353406},
	{B: 40314.0, C: 1239.842 * 1239.842},
}

// Sapphire, Malitson 1962.
var al2o3 = Sellmeier{
	{B: 1.4313493, C: 0.0726631 * 0.0726631},
	{B: 0.65054713, C: 0.1193242 * 0.1193242},
	{B: 5.3414021, C: 18.028251 * 18.028251},
}

// Ta2O5, approximate fit after Bright et al.
var ta2o5 = Sellmeier{
	{B: 3.42, C: 0.178 * 0.178},
	{B: 0.10, C: 10.0 * 10.0},
}

// Schott N-BK7.
var bk7 = Sellmeier{
	{B: 1.03961212, C: 0.00600069867},
	{B: 0.231792344, C: 0.0200179144},
	{B: 1.01046945, C: 103.560653},
}

// Metals: Palik handbook, sampled at key wavelengths.
var alTable = MustTable([]Sample{
	{300, 0.28, 3.61}, {350, 0.37, 4.24}, {400, 0.49, 4.86},
	{450, 0.62, 5.47}, {500, 0.77, 6.08}, {550, 0.93, 6.69},
	{600, 1.12, 7.26}, {650, 1.35, 7.79}, {700, 1.55, 8.31},
	{750, 1.83, 8.60}, {800, 2.08, 8.45}, {850, 2.15, 8.58},
	{900, 2.20, 8.80}, {1000, 2.40, 9.60}, {1100, 2.60, 10.40},
})

var agTable = MustTable([]Sample{
	{300, 1.34, 0.93}, {350, 1.60, 1.15}, {400, 0.07, 1.93},
	{450, 0.04, 2.42}, {500, 0.05, 2.87}, {550, 0.06, 3.33},
	{600, 0.07, 3.75}, {650, 0.08, 4.18}, {700, 0.10, 4.58},
	{750, 0.11, 5.00}, {800, 0.14, 5.38}, {900, 0.17, 6.10},
	{1000, 0.21, 6.82}, {1100, 0.26, 7.50},
})

var auTable = MustTable([]Sample{
	{300, 1.55, 1.85}, {350, 1.70, 1.87}, {400, 1.68, 1.95},
	{450, 1.52, 1.83}, {500, 0.83, 1.84}, {550, 0.33, 2.32},
	{600, 0.17, 3.07}, {650, 0.14, 3.70}, {700, 0.13, 4.26},
	{750, 0.14, 4.79}, {800, 0.16, 5.26}, {900, 0.17, 6.15},
	{1000, 0.26, 6.93}, {1100, 0.30, 7.70},
})

var cuTable = MustTable([]Sample{
	{300, 1.38, 1.57}, {350, 1.37, 1.76}, {400, 1.39, 1.89},
	{450, 1.26, 2.10}, {500, 1.04, 2.59}, {550, 0.87, 2.60},
	{600, 0.22, 3.41}, {650, 0.21, 3.67}, {700, 0.21, 4.05},
	{800, 0.24, 4.74}, {900, 0.27, 5.39}, {1000, 0.32, 6.03},
	{1100, 0.37, 6.67},
})

// Crystalline silicon, Green & Keevers.
var siTable = MustTable([]Sample{
	{300, 4.97, 4.12}, {350, 5.44, 3.56}, {400, 5.57, 0.39},
	{450, 4.68, 0.14}, {500, 4.30, 0.07}, {550, 4.08, 0.04},
	{600, 3.94, 0.03}, {650, 3.84, 0.02}, {700, 3.77, 0.01},
	{750, 3.72, 0.008}, {800, 3.68, 0.005}, {900, 3.62, 0.002},
	{1000, 3.58, 0.001}, {1100, 3.54, 0.0005},
})
