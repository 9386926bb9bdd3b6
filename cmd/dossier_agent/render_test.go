package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderCommands_SeparateOutputDefaults(t *testing.T) {
	// Each command carries its own output flag variable; registering both on
	// a shared variable would let the later default clobber the earlier one.
	pdfFlag := renderPDFCmd.Flags().Lookup("out")
	require.NotNil(t, pdfFlag)
	deckFlag := renderDeckCmd.Flags().Lookup("out")
	require.NotNil(t, deckFlag)

	assert.Equal(t, "dossier.pdf", pdfFlag.DefValue)
	assert.Equal(t, "dossier-deck.pdf", deckFlag.DefValue)
	assert.Equal(t, "dossier.pdf", renderPDFOut)
	assert.Equal(t, "dossier-deck.pdf", renderDeckOut)
}
