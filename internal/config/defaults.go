package config

const (
	defaultTrackingDataDir    = "/media/longc/LSSD/Public/PILSNU"
	defaultTrackingOutDir     = "/media/longc/LSSD/Public/PILSNU/coco_annotations"
	defaultTrackingFramesDir  = "frames"
	defaultTrackingOutputName = "image_names.json"
	defaultPoseTrackDataDir   = "/data/PoseTrack/posetrack_data"
	defaultPoseTrackOutDir    = "/data/PoseTrack/posetrack_data/coco_annotations"
	defaultPoseTrackOutputFmt = "posetrack_instances_%s.json"
	defaultLogFormat          = "console"
	defaultLogLevel           = "info"
	defaultConfigPathTemplate = "~/.config/cococonv/config.toml"
	defaultProjectConfigPath  = "cococonv.toml"
	envLogLevel               = "COCOCONV_LOG_LEVEL"
)

var (
	defaultImageExtensions = []string{".jpg", ".png"}
	defaultPoseTrackSplits = []string{"train", "val", "test"}
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Tracking: Tracking{
			DataDir:    defaultTrackingDataDir,
			OutDir:     defaultTrackingOutDir,
			FramesDir:  defaultTrackingFramesDir,
			OutputName: defaultTrackingOutputName,
			Extensions: append([]string(nil), defaultImageExtensions...),
		},
		PoseTrack: PoseTrack{
			DataDir:       defaultPoseTrackDataDir,
			OutDir:        defaultPoseTrackOutDir,
			Splits:        append([]string(nil), defaultPoseTrackSplits...),
			OutputPattern: defaultPoseTrackOutputFmt,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
