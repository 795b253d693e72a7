//go:build !ebiten

package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/riverfr0zen/sketches-sub000/internal/app"
)

func TestRunWithoutWindowSupport(t *testing.T) {
	_, err := execute(t, "run", "life")
	assert.ErrorIs(t, err, app.ErrNoDisplay)
}
