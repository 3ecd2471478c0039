// Package setup turns screen-space triangles into the half-plane form
// consumed by the tile rasterizer.
//
// Vertices are 28.4 fixed point ([raster.FDot4]). Setup computes the signed
// area, applies face culling, orients the triangle so that its interior is
// on the positive side of every edge and folds the pixel center offset and
// the top-left fill rule into each plane constant. A scissor rectangle and
// up to four user clip planes add auxiliary planes after the three edges.
//
// The pixel sample point is the pixel center: pixel (x, y) is covered iff
// (x+0.5, y+0.5) lies inside the triangle, or exactly on a top or left
// edge.
package setup
