package constants

// Capability
const (
	// Capability is the build plan entry this buildpack both provides and requires.
	Capability = "dotenv"
	LayerName  = "dotenv"
)

// File Names
const (
	EnvFileName          = ".env"
	EnvFileSuffixPrefix  = ".env."
	BuildpackDescriptor  = "buildpack.toml"
	LayerMetadataSuffix  = ".toml"
	PlatformEnvDirName   = "env"
	DefaultPlatformDir   = "/platform"
	DefaultLayersDirName = "layers"
)

// Environment Variables
const (
	SuffixOverrideVar = "BP_DOTENV_SUFFIX"
	LogLevelVar       = "BP_LOG_LEVEL"

	BuildpackDirVar  = "CNB_BUILDPACK_DIR"
	PlatformDirVar   = "CNB_PLATFORM_DIR"
	BuildPlanPathVar = "CNB_BUILD_PLAN_PATH"
	LayersDirVar     = "CNB_LAYERS_DIR"
	BPPlanPathVar    = "CNB_BP_PLAN_PATH"
)

// Exit Codes
const (
	ExitPass       = 0
	ExitError      = 1
	ExitDetectFail = 100
)

// MinBuildpackAPI is the lowest buildpack API whose layer layout we write
// (the [types] table in <layer>.toml).
const MinBuildpackAPI = ">= 0.6"

// DotenvSuffixOverride is baked in at build time when a fixed suffix is wanted:
// -ldflags "-X DotenvBuildpack/internal/constants.DotenvSuffixOverride=production"
// Runtime overrides still take precedence.
var DotenvSuffixOverride = ""
