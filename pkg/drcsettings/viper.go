package drcsettings

import (
	"github.com/spf13/viper"

	"github.com/Jimyzzp/LibrePCB/pkg/fixed"
)

// Viper config keys, one per Settings field, mirroring gerber2em7's
// Cfg* string-constant style. Lengths are stored in millimetres in
// the config file/env (a human enters "0.15", not "150000") and
// converted to nanometres on load.
const (
	CfgMinCopperWidth           = "drc.minCopperWidth"
	CfgMinCopperCopperClearance = "drc.minCopperCopperClearance"
	CfgMinCopperBoardClearance  = "drc.minCopperBoardClearance"
	CfgMinCopperNpthClearance   = "drc.minCopperNpthClearance"
	CfgMinDrillDrillClearance   = "drc.minDrillDrillClearance"
	CfgMinDrillBoardClearance   = "drc.minDrillBoardClearance"
	CfgMinPthAnnularRing        = "drc.minPthAnnularRing"
	CfgMinNpthDrillDiameter     = "drc.minNpthDrillDiameter"
	CfgMinPthDrillDiameter      = "drc.minPthDrillDiameter"
	CfgMinNpthSlotWidth         = "drc.minNpthSlotWidth"
	CfgMinPthSlotWidth          = "drc.minPthSlotWidth"
	CfgAllowedNpthSlots         = "drc.allowedNpthSlots"
	CfgAllowedPthSlots          = "drc.allowedPthSlots"
	CfgMinOutlineToolDiameter   = "drc.minOutlineToolDiameter"
)

// SetDefaults registers Defaults() into v, one v.SetDefault call per
// field, matching configurator.SetDefaults's shape.
func SetDefaults(v *viper.Viper) {
	d := Defaults()
	v.SetDefault(CfgMinCopperWidth, d.MinCopperWidth.Length().Millimeters())
	v.SetDefault(CfgMinCopperCopperClearance, d.MinCopperCopperClearance.Length().Millimeters())
	v.SetDefault(CfgMinCopperBoardClearance, d.MinCopperBoardClearance.Length().Millimeters())
	v.SetDefault(CfgMinCopperNpthClearance, d.MinCopperNpthClearance.Length().Millimeters())
	v.SetDefault(CfgMinDrillDrillClearance, d.MinDrillDrillClearance.Length().Millimeters())
	v.SetDefault(CfgMinDrillBoardClearance, d.MinDrillBoardClearance.Length().Millimeters())
	v.SetDefault(CfgMinPthAnnularRing, d.MinPthAnnularRing.Length().Millimeters())
	v.SetDefault(CfgMinNpthDrillDiameter, d.MinNpthDrillDiameter.Length().Millimeters())
	v.SetDefault(CfgMinPthDrillDiameter, d.MinPthDrillDiameter.Length().Millimeters())
	v.SetDefault(CfgMinNpthSlotWidth, d.MinNpthSlotWidth.Length().Millimeters())
	v.SetDefault(CfgMinPthSlotWidth, d.MinPthSlotWidth.Length().Millimeters())
	v.SetDefault(CfgAllowedNpthSlots, slotModeName(d.AllowedNpthSlots))
	v.SetDefault(CfgAllowedPthSlots, slotModeName(d.AllowedPthSlots))
	v.SetDefault(CfgMinOutlineToolDiameter, d.MinOutlineToolDiameter.Length().Millimeters())
}

// LoadViper reads Settings out of v (after SetDefaults and, optionally,
// v.ReadInConfig have already run). Unlike configurator.ProcessConfigFile,
// which treats a missing file as fatal, this is purely a Viper-to-struct
// mapper — reading the config file itself is the CLI's job (§4.L), not
// this package's.
func LoadViper(v *viper.Viper) Settings {
	mm := fixed.LengthFromMillimeters
	must := fixed.MustUnsignedLength
	return Settings{
		MinCopperWidth:           must(mm(v.GetFloat64(CfgMinCopperWidth))),
		MinCopperCopperClearance: must(mm(v.GetFloat64(CfgMinCopperCopperClearance))),
		MinCopperBoardClearance:  must(mm(v.GetFloat64(CfgMinCopperBoardClearance))),
		MinCopperNpthClearance:   must(mm(v.GetFloat64(CfgMinCopperNpthClearance))),
		MinDrillDrillClearance:   must(mm(v.GetFloat64(CfgMinDrillDrillClearance))),
		MinDrillBoardClearance:   must(mm(v.GetFloat64(CfgMinDrillBoardClearance))),
		MinPthAnnularRing:        must(mm(v.GetFloat64(CfgMinPthAnnularRing))),
		MinNpthDrillDiameter:     must(mm(v.GetFloat64(CfgMinNpthDrillDiameter))),
		MinPthDrillDiameter:      must(mm(v.GetFloat64(CfgMinPthDrillDiameter))),
		MinNpthSlotWidth:         must(mm(v.GetFloat64(CfgMinNpthSlotWidth))),
		MinPthSlotWidth:          must(mm(v.GetFloat64(CfgMinPthSlotWidth))),
		AllowedNpthSlots:         parseSlotMode(v.GetString(CfgAllowedNpthSlots)),
		AllowedPthSlots:          parseSlotMode(v.GetString(CfgAllowedPthSlots)),
		MinOutlineToolDiameter:   must(mm(v.GetFloat64(CfgMinOutlineToolDiameter))),
	}
}

func slotModeName(m AllowedSlotMode) string {
	switch m {
	case SlotsNone:
		return "none"
	case SlotsSingleSegmentStraight:
		return "single_segment_straight"
	case SlotsMultiSegmentStraight:
		return "multi_segment_straight"
	default:
		return "any"
	}
}

func parseSlotMode(s string) AllowedSlotMode {
	switch s {
	case "none":
		return SlotsNone
	case "single_segment_straight":
		return SlotsSingleSegmentStraight
	case "multi_segment_straight":
		return SlotsMultiSegmentStraight
	default:
		return SlotsAny
	}
}
