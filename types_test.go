package brandkit

// Notes:
// - Clone: deep copy isolation for every nested slice
// - Slot.String: diagnostic formatting
// - PageSettings.Validate: bounds and enums, nil means defaults

import (
	"errors"
	"testing"
)

// ---------------------------------------------------------------------------
// TestClone - Deep Copy Isolation
// ---------------------------------------------------------------------------

func TestClone(t *testing.T) {
	t.Parallel()

	kit := exportKit()
	clone := kit.Clone()

	clone.Brand.Name = "Changed"
	clone.Logos[0].Variants[0].Src = "changed.png"
	clone.Colors[0].Role[0] = RoleData
	clone.Typography.Fonts[0].Source.Weights[0] = 900
	clone.Typography.Examples[0].Text = "changed"
	clone.Gallery[0].Src = "changed.jpg"

	if kit.Brand.Name == "Changed" {
		t.Error("brand leaked between clone and original")
	}
	if kit.Logos[0].Variants[0].Src == "changed.png" {
		t.Error("logo variants leaked between clone and original")
	}
	if kit.Colors[0].Role[0] == RoleData {
		t.Error("color roles leaked between clone and original")
	}
	if kit.Typography.Fonts[0].Source.Weights[0] == 900 {
		t.Error("font weights leaked between clone and original")
	}
	if kit.Typography.Examples[0].Text == "changed" {
		t.Error("examples leaked between clone and original")
	}
	if kit.Gallery[0].Src == "changed.jpg" {
		t.Error("gallery leaked between clone and original")
	}
}

func TestCloneNil(t *testing.T) {
	t.Parallel()

	var kit *BrandKit
	if kit.Clone() != nil {
		t.Error("Clone() on nil kit should return nil")
	}
}

// ---------------------------------------------------------------------------
// TestSlotString - Diagnostic Formatting
// ---------------------------------------------------------------------------

func TestSlotString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		slot     Slot
		expected string
	}{
		{Slot{Kind: SlotLogoVariant, Index: 1, Sub: 2}, "logoVariant[1][2]"},
		{Slot{Kind: SlotGallery, Index: 3}, "gallery[3]"},
		{Slot{Kind: SlotFont, Index: 0}, "font[0]"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			t.Parallel()

			if got := tt.slot.String(); got != tt.expected {
				t.Errorf("String() = %q, want %q", got, tt.expected)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestPageSettingsValidate - Bounds and Enums
// ---------------------------------------------------------------------------

func TestPageSettingsValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		settings *PageSettings
		wantErr  error
	}{
		{
			name:     "nil settings are valid",
			settings: nil,
		},
		{
			name:     "defaults are valid",
			settings: DefaultPageSettings(),
		},
		{
			name:     "uppercase size accepted",
			settings: &PageSettings{Size: "A4", Orientation: "Portrait", Margin: 0.5},
		},
		{
			name:     "unknown size",
			settings: &PageSettings{Size: "tabloid", Orientation: "portrait", Margin: 0.5},
			wantErr:  ErrInvalidPageSize,
		},
		{
			name:     "unknown orientation",
			settings: &PageSettings{Size: "a4", Orientation: "diagonal", Margin: 0.5},
			wantErr:  ErrInvalidOrientation,
		},
		{
			name:     "margin below minimum",
			settings: &PageSettings{Size: "a4", Orientation: "portrait", Margin: 0.1},
			wantErr:  ErrInvalidMargin,
		},
		{
			name:     "margin above maximum",
			settings: &PageSettings{Size: "a4", Orientation: "portrait", Margin: 4},
			wantErr:  ErrInvalidMargin,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.settings.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
