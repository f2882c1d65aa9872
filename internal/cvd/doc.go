// Package cvd simulates color-vision deficiencies (protanopia, deuteranopia,
// tritanopia) as severity-parameterized linear transforms in linear sRGB,
// following the Machado, Oliveira & Fernandes (2009) dichromat model.
package cvd
