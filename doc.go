// Package blit copies rectangles of pixels between software surfaces of
// different depths, for palette-indexed retro renderers.
//
// # Overview
//
// A Surface is a pixel buffer of one of four depths: 8-bit palette indices,
// 16-bit RGB565, 24-bit BGR and 32-bit BGRX. Blit copies a rectangle from
// one surface to another, converting pixels on the way, and BlitScaled does
// the same with nearest-neighbor resampling.
//
// # Quick Start
//
//	import "github.com/gogpu/blit"
//
//	screen, _ := blit.NewSurface(320, 200, blit.Depth32)
//	sprite, _ := blit.NewSurface(16, 16, blit.Depth8)
//	sprite.SetPalette(&pal)
//
//	// Draw the sprite at (100, 50), treating index 0 as transparent
//	err := blit.Blit(screen, 100, 50, sprite, sprite.Rect(), blit.WithColorKey(0))
//
//	// Draw it again at twice the size
//	err = blit.BlitScaled(screen, blit.Rect{X: 0, Y: 0, Width: 32, Height: 32},
//	    sprite, sprite.Rect())
//
// # Clipping
//
// Rectangles may start at negative coordinates or run past either surface.
// Clip trims them against both surfaces at once, keeping source and
// destination in step, and an empty result makes the blit a no-op.
//
// # Color conversion
//
// Indexed sources are looked up in their palette. Indexed destinations are
// written with the nearest palette entry: an exact match first, otherwise
// the smallest squared RGB distance, with the lowest index winning ties.
// RGB565 values expand to 8 bits per channel by bit replication.
//
// # Concurrency
//
// Every call is synchronous and keeps no state between calls. Surfaces are
// not locked; callers must not blit into the same memory from two
// goroutines at once.
package blit
