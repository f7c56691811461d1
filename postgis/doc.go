// Package postgis implements geometry reprojection against a PostGIS
// database. The converter depends only on the Reprojector contract;
// this package provides the production implementation.
package postgis
