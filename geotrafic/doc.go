// Package geotrafic handles fetching and decoding the Geo-Trafic road
// event feed, a TMDD-derived XML document published by the Ville de
// Montréal.
//
// The main type is Event, which exposes typed accessors over the
// loosely structured source record so converters never touch raw
// element paths.
package geotrafic
