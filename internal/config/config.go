package config

import (
	"fmt"
	"os"
	"strconv"
)

type Config struct {
	ServerPort string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	JWTSecret string

	AdminEmail    string
	AdminPassword string

	S3Endpoint       string
	S3Region         string
	S3AccessKey      string
	S3SecretKey      string
	S3ForcePathStyle bool

	ProductsBucket string
	GalleryBucket  string
	ImagesBucket   string
}

func Load() *Config {
	return &Config{
		ServerPort: getEnv("SERVER_PORT", "8080"),

		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       getEnvInt("REDIS_DB", 0),

		JWTSecret: getEnv("JWT_SECRET", "changeme"),

		AdminEmail:    getEnv("ADMIN_EMAIL", "admin@amalynlocs.com"),
		AdminPassword: getEnv("ADMIN_PASSWORD", "changeme"),

		S3Endpoint:       getEnv("S3_ENDPOINT", "http://localhost:9000"),
		S3Region:         getEnv("S3_REGION", "us-east-1"),
		S3AccessKey:      getEnv("S3_ACCESS_KEY", "minioadmin"),
		S3SecretKey:      getEnv("S3_SECRET_KEY", "minioadmin"),
		S3ForcePathStyle: getEnv("S3_FORCE_PATH_STYLE", "true") == "true",

		ProductsBucket: getEnv("PRODUCTS_BUCKET", "amalyn-products"),
		GalleryBucket:  getEnv("GALLERY_BUCKET", "amalyn-gallery"),
		ImagesBucket:   getEnv("IMAGES_BUCKET", "amalyn-images"),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%s", c.ServerPort)
}

// BucketFor maps an image type tag to its storage bucket. Unknown types
// fall back to the general images bucket.
func (c *Config) BucketFor(imageType string) string {
	switch imageType {
	case "product":
		return c.ProductsBucket
	case "gallery":
		return c.GalleryBucket
	default:
		return c.ImagesBucket
	}
}

func (c *Config) Buckets() []string {
	return []string{c.ProductsBucket, c.GalleryBucket, c.ImagesBucket}
}
