// Package view turns command results into format-neutral blocks that the
// text and terminal renderers lay out.
package view

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/modkeeper/pkg/deploy"
	"github.com/arthur-debert/modkeeper/pkg/displaytweaks"
	"github.com/arthur-debert/modkeeper/pkg/panel"
	"github.com/arthur-debert/modkeeper/pkg/presets"
)

// Tone is the semantic style of a value. Tones match style names.
type Tone string

const (
	ToneNone      Tone = ""
	ToneSuccess   Tone = "Success"
	ToneWarning   Tone = "Warning"
	ToneError     Tone = "Error"
	ToneMuted     Tone = "Muted"
	ToneHighlight Tone = "Highlight"
	TonePath      Tone = "Path"
)

// Row is a labelled value, or a list item when Label is a marker
type Row struct {
	Label string
	Value string
	Tone  Tone
}

// Block is one rendered result
type Block struct {
	Title    string
	Rows     []Row
	Items    []Row
	Notes    []string
	Markdown string
}

// Build converts a known result into a block. ok is false for types it
// does not know.
func Build(result interface{}) (b *Block, ok bool) {
	switch v := result.(type) {
	case panel.Status:
		return status(v), true
	case *panel.Status:
		return status(*v), true
	case panel.UpdateCheck:
		return updateCheck(v), true
	case *panel.UpdateCheck:
		return updateCheck(*v), true
	case *panel.UpdateResult:
		return updateResult(v), true
	case *deploy.Result:
		return deployResult(v), true
	case []presets.Preset:
		return presetList(v), true
	case displaytweaks.Settings:
		return display(v), true
	}
	return nil, false
}

func status(s panel.Status) *Block {
	b := &Block{Title: "modkeeper status"}
	b.Rows = append(b.Rows,
		Row{"Game directory", s.GameDir, TonePath},
		Row{"Local version", s.LocalVersion, ToneHighlight},
		remoteRow(s.RemoteVersion, s.RemoteKnown),
		availability(s.RemoteKnown, s.UpdateAvailable),
		activeRow(s.ActivePresets, s.ActivePaths),
	)

	active := map[string]bool{}
	for _, name := range s.ActivePresets {
		active[name] = true
	}
	for _, name := range s.Presets {
		if active[name] {
			b.Items = append(b.Items, Row{"*", name, ToneSuccess})
		} else {
			b.Items = append(b.Items, Row{"-", name, ToneNone})
		}
	}
	if len(s.Presets) == 0 {
		b.Notes = append(b.Notes, "No presets installed.")
	}
	return b
}

func remoteRow(remote string, known bool) Row {
	if !known {
		return Row{"Remote version", "unknown", ToneMuted}
	}
	return Row{"Remote version", remote, ToneHighlight}
}

func availability(known, available bool) Row {
	switch {
	case !known:
		return Row{"Update", "cannot check", ToneMuted}
	case available:
		return Row{"Update", "available", ToneWarning}
	default:
		return Row{"Update", "up to date", ToneSuccess}
	}
}

func activeRow(activePresets, activePaths []string) Row {
	switch {
	case len(activePresets) > 0:
		return Row{"Active preset", strings.Join(activePresets, ", "), ToneSuccess}
	case len(activePaths) > 0:
		return Row{"Active preset", fmt.Sprintf("unrecognized (%d managed paths)", len(activePaths)), ToneWarning}
	default:
		return Row{"Active preset", "none", ToneMuted}
	}
}

func updateCheck(c panel.UpdateCheck) *Block {
	b := &Block{Title: "update check", Markdown: c.Changelog}
	b.Rows = append(b.Rows,
		Row{"Local version", c.Local, ToneHighlight},
		remoteRow(c.Remote, c.Known),
		availability(c.Known, c.Available),
	)
	if c.Available {
		b.Notes = append(b.Notes, "Run `modkeeper update apply` to install it.")
	}
	return b
}

func updateResult(r *panel.UpdateResult) *Block {
	b := &Block{Title: "update"}
	if r.Artifact == "" {
		b.Notes = append(b.Notes, fmt.Sprintf("Already up to date at %s.", r.To))
		return b
	}
	b.Rows = append(b.Rows,
		Row{"From", r.From, ToneMuted},
		Row{"To", r.To, ToneSuccess},
		Row{"Downloaded", r.Artifact, TonePath},
	)
	return b
}

func deployResult(r *deploy.Result) *Block {
	b := &Block{Title: "managed files removed"}
	if r.Preset != "" {
		b.Title = "preset " + r.Preset + " applied"
	}
	for _, p := range r.Removed {
		b.Items = append(b.Items, Row{"-", p, ToneWarning})
	}
	for _, p := range r.Installed {
		b.Items = append(b.Items, Row{"+", p, ToneSuccess})
	}
	if r.Preset != "" {
		for _, p := range r.Skipped {
			b.Items = append(b.Items, Row{"!", p + " (not in preset)", ToneMuted})
		}
	}
	if !r.Changed() {
		b.Notes = append(b.Notes, "Nothing to change.")
	}
	return b
}

func presetList(list []presets.Preset) *Block {
	b := &Block{Title: "presets"}
	for _, p := range list {
		value := p.DisplayName()
		if p.DisplayName() != p.Name {
			value += " [" + p.Name + "]"
		}
		if p.Metadata.Description != "" {
			value += ": " + p.Metadata.Description
		}
		if p.Metadata.Author != "" {
			value += " (by " + p.Metadata.Author + ")"
		}
		b.Items = append(b.Items, Row{"-", value, ToneNone})
	}
	if len(list) == 0 {
		b.Notes = append(b.Notes, "No presets installed.")
	}
	return b
}

func display(s displaytweaks.Settings) *Block {
	b := &Block{Title: "display settings"}
	res := Row{"Resolution", s.Resolution, ToneHighlight}
	if s.Resolution == "" {
		res = Row{"Resolution", "not set", ToneMuted}
	}
	b.Rows = append(b.Rows, res, Row{"Mode", Mode(s), ToneHighlight})
	return b
}

// Mode names the window mode of s
func Mode(s displaytweaks.Settings) string {
	switch {
	case s.Fullscreen:
		return "fullscreen"
	case s.Borderless:
		return "borderless"
	default:
		return "windowed"
	}
}
