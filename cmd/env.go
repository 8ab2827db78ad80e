package cmd

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"github.com/df07/go-aobench/pkg/imageio"
)

// Environment variables read by the CLI
const (
	envRootDir     = "AOBENCH_ROOT_DIR"
	envS3AccessKey = "S3_ACCESS_KEY"
	envS3SecretKey = "S3_SECRET_KEY"
	envS3Endpoint  = "S3_ENDPOINT"
	envS3Region    = "S3_REGION"
	envS3Bucket    = "S3_BUCKET"
)

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// loadEnv preloads the .env file found in the root directory. Variables
// already present in the environment win.
func loadEnv() {
	envFile := filepath.Join(getEnv(envRootDir, "."), ".env")
	if err := godotenv.Load(envFile); err != nil {
		logger.Debugf("no environment file loaded from %s: %v", envFile, err)
		return
	}
	logger.Infof("loaded environment from %s", envFile)
}

// s3ConfigFromEnv collects the object storage settings
func s3ConfigFromEnv() imageio.S3Config {
	return imageio.S3Config{
		AccessKey: getEnv(envS3AccessKey, ""),
		SecretKey: getEnv(envS3SecretKey, ""),
		Endpoint:  getEnv(envS3Endpoint, ""),
		Region:    getEnv(envS3Region, "us-east-1"),
		Bucket:    getEnv(envS3Bucket, ""),
	}
}
