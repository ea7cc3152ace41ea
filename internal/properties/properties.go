package properties

import (
	"os"
	"strconv"
)

func RootPath() string {
	return os.Getenv("ROOT_PATH")
}

// MaxCloudCover is the default cloud-cover ceiling (percent) used when
// selecting scenes. The value is handed to the engine explicitly;
// nothing inside the engine reads the environment.
func MaxCloudCover() float64 {
	if v := os.Getenv("SOIL_MAX_CLOUD_COVER"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return 20
}

// SceneWindowDays is how far back from the analysis date the catalog
// is searched for candidate scenes.
func SceneWindowDays() int {
	if v := os.Getenv("SOIL_SCENE_WINDOW_DAYS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return 30
}

// SyntheticSeed seeds the synthetic scene generator so fallback runs
// are reproducible.
func SyntheticSeed() int64 {
	if v := os.Getenv("SOIL_SYNTHETIC_SEED"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return 1
}

func DiscordErrorNotificationUrl() string {
	return os.Getenv("DISCORD_ERROR_NOTIFICATION_URL")
}
func DiscordSuccessNotificationUrl() string {
	return os.Getenv("DISCORD_SUCCESS_NOTIFICATION_URL")
}
