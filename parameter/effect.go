package parameter

import "time"

// Particle Field
const (
	// ParticleDefaultCount is the requested mote count before tier scaling
	ParticleDefaultCount = 50

	// ParticleDriftSpeedFloat is base horizontal drift (cells/sec)
	ParticleDriftSpeedFloat = 1.6

	// ParticleBobAmplitudeFloat is vertical sinusoid amplitude (cells)
	ParticleBobAmplitudeFloat = 1.2

	// ParticleTwinkleHz is brightness oscillation frequency
	ParticleTwinkleHz = 0.5
)

// Wave Field
const (
	// WaveDefaultBands is the number of stacked sine bands
	WaveDefaultBands = 4

	// WaveBaseAmplitudeFloat is band displacement in cells
	WaveBaseAmplitudeFloat = 3.0

	// WaveScrollSpeedFloat is phase velocity (radians/sec)
	WaveScrollSpeedFloat = 0.8
)

// Grid Field
const (
	// GridDefaultSpacing is cells between grid lines at the near plane
	GridDefaultSpacing = 6

	// GridScrollSpeedFloat is floor scroll rate (rows/sec)
	GridScrollSpeedFloat = 2.0

	// GridHorizonFloat is horizon height as a fraction of the view
	GridHorizonFloat = 0.35
)

// Voxel Field
const (
	// VoxelDefaultCount is the requested cube count before tier scaling
	VoxelDefaultCount = 40

	// VoxelOrbitSpeedFloat is angular velocity (radians/sec)
	VoxelOrbitSpeedFloat = 0.4

	// VoxelDepthRangeFloat is the z span cubes are distributed over
	VoxelDepthRangeFloat = 8.0
)

// Lightning
const (
	// LightningCycle is the period of one flash-and-fade cycle
	LightningCycle = 2500 * time.Millisecond

	// LightningFlashFraction is the portion of a cycle at full intensity
	LightningFlashFraction = 0.12

	// LightningJitterFloat is max horizontal displacement per segment (cells)
	LightningJitterFloat = 3.0

	// LightningBranchChanceFloat is per-segment branch probability
	LightningBranchChanceFloat = 0.25
)

// Liquid Chrome
const (
	// ChromeScaleFloat is spatial frequency of the interference field
	ChromeScaleFloat = 0.11

	// ChromeFlowSpeedFloat is temporal frequency (radians/sec)
	ChromeFlowSpeedFloat = 0.6

	// ChromeHighlightThresholdFloat marks the specular band (0.0-1.0)
	ChromeHighlightThresholdFloat = 0.82
)

// Glyph Rain
const (
	// RainDefaultColumnDensity is active columns as a fraction of width
	RainDefaultColumnDensity = 0.7

	// RainMinSpeedFloat and RainMaxSpeedFloat bound drop fall rate (rows/sec)
	RainMinSpeedFloat = 4.0
	RainMaxSpeedFloat = 14.0

	// RainTrailMin and RainTrailMax bound trail length (rows)
	RainTrailMin = 4
	RainTrailMax = 16
)
