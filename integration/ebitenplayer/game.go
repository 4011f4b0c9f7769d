// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package ebitenplayer adapts a movie player to ebiten's game loop:
// Update advances playback by one tick, Draw uploads the composite to
// the screen. It exists so a movie can be previewed in a window with no
// GPU-context host wired up.
package ebitenplayer

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gogpu/swfkit"
	"github.com/gogpu/swfkit/player"
)

// Game implements ebiten.Game around one player.
type Game struct {
	player *player.Player
	target *swfkit.Pixmap
	frame  *ebiten.Image
	width  int
	height int
}

// NewGame creates a game presenting the player at a fixed logical size.
func NewGame(p *player.Player, width, height int) *Game {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	return &Game{
		player: p,
		target: swfkit.NewPixmap(width, height),
		width:  width,
		height: height,
	}
}

// Player returns the wrapped player, for playback control from input
// handling.
func (g *Game) Player() *player.Player { return g.player }

// Update implements ebiten.Game: advances playback by one tick of the
// fixed timestep and recomposites the frame.
func (g *Game) Update() error {
	dt := time.Second / time.Duration(ebiten.TPS())
	g.player.Advance(dt)
	g.target.Clear(swfkit.Color{})
	g.player.RenderInto(g.target)
	return nil
}

// Draw implements ebiten.Game: uploads the composite and draws it.
// SRGBPix returns premultiplied sRGB bytes, the layout WritePixels
// expects.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.frame == nil {
		g.frame = ebiten.NewImage(g.width, g.height)
	}
	g.frame.WritePixels(g.target.SRGBPix())
	screen.DrawImage(g.frame, nil)
}

// Layout implements ebiten.Game with a fixed logical size.
func (g *Game) Layout(int, int) (int, int) {
	return g.width, g.height
}
