// Package geo draws choropleth maps from GeoJSON boundaries.
//
// Boundaries are read as a FeatureCollection, annotated with ids taken
// from a feature property (GEOID for US counties), projected to a plane
// and drawn on a tally.Canvas. The canvas data space is the projected
// plane; Fit returns the viewport that frames it on an image.
//
//	fc, _ := geo.Load("counties.geojson")
//	_ = geo.AssignIDs(fc, "GEOID")
//	proj, _ := geo.Project(fc, geo.Mercator)
//	vp, _ := geo.Fit(geo.Bounds(proj, ids), 1000, 500)
//	rec := recording.NewRecorder(vp)
//	geo.DrawMap(rec, proj, fills, geo.DefaultStyle())
package geo
