package config

import "os"

type ServerConfig struct {
	Port       string
	ContentDir string
	PublicPath string
}

func GetServerConfig() *ServerConfig {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	contentDir := os.Getenv("CONTENT_DIR")
	if contentDir == "" {
		contentDir = "static"
	}
	return &ServerConfig{
		Port:       port,
		ContentDir: contentDir,
		PublicPath: "/static",
	}
}
