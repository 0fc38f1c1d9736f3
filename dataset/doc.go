// Package dataset reads tabular election results.
//
// A table is a .csv file or the first sheet of an .xlsx workbook. The first
// row is a header. Region tables need an "id" column (the first column is
// used when none is named "id"), a "result" column holding a signed margin
// in [-100, 100] and optionally a "name" or "county" column. City tables
// need "name", "lat" and "lon" columns.
//
// Ids are kept verbatim, so FIPS codes keep their leading zeros.
package dataset
