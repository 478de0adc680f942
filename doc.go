// Package games provides a small supersampled software canvas for
// animations and simple games.
//
// # Overview
//
// A Canvas keeps a subpixel buffer sampled SN×SN times per visible pixel
// (SN = 4 by default). Shapes are painted into it with hard edges, and
// EndFrame box-filters each SN×SN block down to one pixel of a BGR Frame,
// which anti-aliases every edge at once.
//
// # Quick Start
//
//	import (
//	    "github.com/0382/games"
//	    "github.com/0382/games/geom"
//	)
//
//	cv, err := games.NewCanvas(100, 100)
//	if err != nil {
//	    return err
//	}
//	defer cv.Close()
//
//	cv.BeginFrame()
//	cv.Clear(games.Black)
//	cv.FillCircle(geom.CircleXY(50, 50, 10), games.LightWhite)
//	cv.EndFrame()
//
//	cv.SaveBMP("circle.bmp")
//
// # Frame Loop
//
// Loop drives a Scene at a fixed frame rate on the caller's goroutine and
// publishes each reduced frame to a FrontBuffer. A window shell reads the
// FrontBuffer through a Presenter, which implements WindowHandler, so the
// shell never observes a partially drawn frame.
//
// # Coordinate System
//
// Uses standard raster coordinates:
//   - Origin (0,0) at the top-left corner
//   - X increases right
//   - Y increases down
//   - Angles in radians; a positive angle turns +x toward +y
//
// Pixel (x, y) covers the square [x, x+1)×[y, y+1). Subpixels are sampled
// at their centers, and a sample exactly on a shape's boundary is inside.
//
// # Architecture
//
// The module is organized into:
//   - mat: generic matrices and vectors
//   - transform: 2D affine and 3D homogeneous transforms
//   - geom: shape value types and angle normalization
//   - games: Color, Canvas, Frame, Loop and the window hooks
//   - internal/raster: subpixel buffer and scan conversion
//   - internal/parallel: band worker pool for the reduction
//   - internal/bmp: BMP encoding
package games

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
