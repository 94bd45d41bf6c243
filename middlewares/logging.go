package middlewares

import (
	"log"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger instances for different log levels
var (
	AuditLogger *log.Logger
	DebugLogger *log.Logger
	ErrorLogger *log.Logger
)

func init() {
	AuditLogger = newRotatingLogger("audit", "AUDIT: ")
	DebugLogger = newRotatingLogger("debug", "DEBUG: ")
	ErrorLogger = newRotatingLogger("error", "ERROR: ")
}

// newRotatingLogger sets up a lumberjack-backed logger under logs/<name>/.
func newRotatingLogger(name, prefix string) *log.Logger {
	dir := filepath.Join("logs", name)
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		log.Fatalf("Could not create log directory %s: %v", dir, err)
	}

	out := &lumberjack.Logger{
		Filename:   filepath.Join(dir, name+".log"),
		MaxSize:    1,
		MaxBackups: 3,
		MaxAge:     28,
		Compress:   true,
	}
	return log.New(out, prefix, log.LstdFlags)
}

// LoggingMiddleware logs audit information for every request.
func LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		timestamp := time.Now().Format(time.RFC3339)
		AuditLogger.Printf("Time: %s | Method: %s | URL: %s | User-Agent: %s | IP: %s",
			timestamp, r.Method, r.URL.String(), r.UserAgent(), getIPAddress(r))
		next.ServeHTTP(w, r)
	})
}

func getIPAddress(r *http.Request) string {
	// Check X-Forwarded-For header for proxies
	xff := r.Header.Get("X-Forwarded-For")
	if xff != "" {
		parts := strings.Split(xff, ",")
		if len(parts) > 0 {
			return strings.TrimSpace(parts[0])
		}
	}

	// Fallback to RemoteAddr (trim port)
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}
