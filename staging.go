package brandkit

import (
	"encoding/hex"
	"fmt"
	"net/http"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/zeebo/blake3"
	"go.uber.org/zap"

	"github.com/nclosa/go-brandkit/internal/nameutil"
)

// imageExtensions are the file extensions admitted into logo variant and
// gallery slots without content sniffing.
var imageExtensions = map[string]bool{
	"png":  true,
	"jpg":  true,
	"jpeg": true,
	"gif":  true,
	"webp": true,
	"svg":  true,
}

// fontExtensions are the file extensions admitted into font slots
// without content sniffing.
var fontExtensions = map[string]bool{
	"ttf":   true,
	"otf":   true,
	"woff":  true,
	"woff2": true,
}

// Stage accumulates pending assets between edits and export. It plays
// the editing surface's asset-accumulator role: uploads are admitted
// with a media-kind check, keyed by a stable identity, and handed to
// the exporter as an immutable snapshot.
//
// A Stage is not safe for concurrent use; it belongs to a single
// editing surface by contract.
type Stage struct {
	assets []PendingAsset
	logger *zap.Logger
}

// StageOption configures a Stage.
type StageOption func(*Stage)

// WithStageLogger sets the logger used for staging diagnostics.
// The default is a no-op logger.
func WithStageLogger(logger *zap.Logger) StageOption {
	return func(s *Stage) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewStage creates an empty Stage.
func NewStage(opts ...StageOption) *Stage {
	s := &Stage{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Put stages one binary payload for a slot. The payload must match the
// slot's expected media kind (images for logo variants and gallery,
// font formats for fonts); a mismatch returns ErrAssetRejected and
// leaves the stage unchanged. Staging assigns a stable UUID identity
// and a BLAKE3 content digest.
//
// Re-staging an occupied logo variant or gallery slot replaces the
// previous asset; font slots accumulate, one asset per file.
func (s *Stage) Put(slot Slot, originalFilename string, data []byte) (PendingAsset, error) {
	if len(data) == 0 {
		return PendingAsset{}, fmt.Errorf("%w: %s", ErrEmptyAsset, slot)
	}

	switch slot.Kind {
	case SlotLogoVariant, SlotGallery:
		if !isImagePayload(originalFilename, data) {
			return PendingAsset{}, fmt.Errorf("%w: %q is not an image (slot %s)", ErrAssetRejected, originalFilename, slot)
		}
	case SlotFont:
		if !isFontPayload(originalFilename, data) {
			return PendingAsset{}, fmt.Errorf("%w: %q is not a font file (slot %s)", ErrAssetRejected, originalFilename, slot)
		}
	default:
		return PendingAsset{}, fmt.Errorf("%w: %q", ErrUnknownKind, slot.Kind)
	}

	digest := blake3.Sum256(data)
	asset := PendingAsset{
		ID:               uuid.NewString(),
		Slot:             slot,
		OriginalFilename: originalFilename,
		Data:             append([]byte(nil), data...),
		Digest:           hex.EncodeToString(digest[:]),
	}

	if slot.Kind != SlotFont {
		if i := s.indexOfSlot(slot); i >= 0 {
			s.logger.Debug("replacing staged asset",
				zap.String("slot", slot.String()),
				zap.String("previous", s.assets[i].OriginalFilename),
				zap.String("replacement", originalFilename))
			s.assets[i] = asset
			return asset, nil
		}
	}

	s.logger.Debug("staged asset",
		zap.String("slot", slot.String()),
		zap.String("filename", originalFilename),
		zap.Int("bytes", len(data)))
	s.assets = append(s.assets, asset)
	return asset, nil
}

// Remove discards the asset with the given identity.
// Returns false if no staged asset has that id.
func (s *Stage) Remove(id string) bool {
	for i, a := range s.assets {
		if a.ID == id {
			s.assets = append(s.assets[:i], s.assets[i+1:]...)
			return true
		}
	}
	return false
}

// RemoveSlot discards every asset staged for the slot and returns how
// many were removed. Other slots keep their positions; nothing is
// renumbered.
func (s *Stage) RemoveSlot(slot Slot) int {
	kept := s.assets[:0]
	removed := 0
	for _, a := range s.assets {
		if a.Slot == slot {
			removed++
			continue
		}
		kept = append(kept, a)
	}
	s.assets = kept
	return removed
}

// Len reports the number of staged assets.
func (s *Stage) Len() int {
	return len(s.assets)
}

// Snapshot returns the staged assets in deterministic order: by slot
// kind (logo variants, gallery, fonts), then index, then sub-index,
// then staging order. The returned slice and its payloads are copies;
// the exporter never aliases stage-owned memory.
func (s *Stage) Snapshot() []PendingAsset {
	out := make([]PendingAsset, len(s.assets))
	for i, a := range s.assets {
		out[i] = a
		out[i].Data = append([]byte(nil), a.Data...)
	}

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Slot.Kind != b.Slot.Kind {
			return kindRank(a.Slot.Kind) < kindRank(b.Slot.Kind)
		}
		if a.Slot.Index != b.Slot.Index {
			return a.Slot.Index < b.Slot.Index
		}
		return a.Slot.Sub < b.Slot.Sub
	})

	return out
}

// indexOfSlot returns the position of the asset staged for slot, or -1.
func (s *Stage) indexOfSlot(slot Slot) int {
	for i, a := range s.assets {
		if a.Slot == slot {
			return i
		}
	}
	return -1
}

// kindRank orders slot kinds the way archive entries are laid out.
func kindRank(k SlotKind) int {
	switch k {
	case SlotLogoVariant:
		return 0
	case SlotGallery:
		return 1
	case SlotFont:
		return 2
	}
	return 3
}

// isImagePayload admits a payload by image extension or sniffed content type.
func isImagePayload(filename string, data []byte) bool {
	if imageExtensions[nameutil.Ext(filename)] {
		return true
	}
	return strings.HasPrefix(http.DetectContentType(data), "image/")
}

// isFontPayload admits a payload by font extension or sniffed content type.
func isFontPayload(filename string, data []byte) bool {
	if fontExtensions[nameutil.Ext(filename)] {
		return true
	}
	return strings.HasPrefix(http.DetectContentType(data), "font/")
}
