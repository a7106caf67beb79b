// Package drcsettings defines the DRC engine's settings record and
// how to load it. Grounded on gerber2em7's src/configurator package:
// config-key string constants plus a SetDefaults(v)/ProcessConfigFile(v)
// pair built on Viper.
package drcsettings

import "github.com/Jimyzzp/LibrePCB/pkg/fixed"

// AllowedSlotMode restricts which drilled-slot shapes pass the
// AllowedNpthSlots/AllowedPthSlots check (§4.G check 10).
type AllowedSlotMode int

const (
	SlotsNone AllowedSlotMode = iota
	SlotsSingleSegmentStraight
	SlotsMultiSegmentStraight
	SlotsAny
)

// Settings is the DRC engine's input configuration (§4.G). Every
// length is in nanometres; a zero length disables the corresponding
// check, per the distilled spec's own convention.
type Settings struct {
	MinCopperWidth           fixed.UnsignedLength
	MinCopperCopperClearance fixed.UnsignedLength
	MinCopperBoardClearance  fixed.UnsignedLength
	MinCopperNpthClearance   fixed.UnsignedLength
	MinDrillDrillClearance   fixed.UnsignedLength
	MinDrillBoardClearance   fixed.UnsignedLength
	MinPthAnnularRing        fixed.UnsignedLength
	MinNpthDrillDiameter     fixed.UnsignedLength
	MinPthDrillDiameter      fixed.UnsignedLength
	MinNpthSlotWidth         fixed.UnsignedLength
	MinPthSlotWidth          fixed.UnsignedLength
	AllowedNpthSlots         AllowedSlotMode
	AllowedPthSlots          AllowedSlotMode
	MinOutlineToolDiameter   fixed.UnsignedLength
}

// Defaults returns the settings the reference implementation ships
// with out of the box: conservative minima suitable for a typical
// two-to-four-layer consumer-grade PCB fab.
func Defaults() Settings {
	mm := fixed.LengthFromMillimeters
	must := fixed.MustUnsignedLength
	return Settings{
		MinCopperWidth:           must(mm(0.15)),
		MinCopperCopperClearance: must(mm(0.15)),
		MinCopperBoardClearance:  must(mm(0.3)),
		MinCopperNpthClearance:   must(mm(0.3)),
		MinDrillDrillClearance:   must(mm(0.25)),
		MinDrillBoardClearance:   must(mm(0.3)),
		MinPthAnnularRing:        must(mm(0.15)),
		MinNpthDrillDiameter:     must(mm(0.3)),
		MinPthDrillDiameter:      must(mm(0.3)),
		MinNpthSlotWidth:         must(mm(0.3)),
		MinPthSlotWidth:          must(mm(0.3)),
		AllowedNpthSlots:         SlotsAny,
		AllowedPthSlots:          SlotsAny,
		MinOutlineToolDiameter:   must(mm(0)),
	}
}
