package server

import (
	"bytes"
	"io"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	"github.com/valyala/fasttemplate"
)

const DefaultRequestLogFormat = "${method} ${uri} -> ${status} in ${latency_human} (id=${id}): ${error}"

type RequestLoggerConfig struct {
	Logger *logrus.Logger
	// Format is a fasttemplate with ${tag} placeholders.
	Format string
	// LogSuccess also logs requests that did not fail, at debug level.
	LogSuccess bool
}

// RequestLogger logs failed requests through logrus. The handler error is
// resolved with c.Error first so the logged status is the one sent.
func RequestLogger(config RequestLoggerConfig) echo.MiddlewareFunc {
	if config.Format == "" {
		config.Format = DefaultRequestLogFormat
	}
	if config.Logger == nil {
		config.Logger = logrus.StandardLogger()
	}

	template := fasttemplate.New(config.Format, "${", "}")
	pool := &sync.Pool{
		New: func() interface{} {
			return bytes.NewBuffer(make([]byte, 256))
		},
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			req := c.Request()
			res := c.Response()
			start := time.Now()
			if err = next(c); err == nil && !config.LogSuccess {
				// skip non errors
				return
			} else if err != nil {
				c.Error(err)
			}
			stop := time.Now()

			buf := pool.Get().(*bytes.Buffer)
			buf.Reset()
			defer pool.Put(buf)

			_, tplErr := template.ExecuteFunc(buf, func(w io.Writer, tag string) (int, error) {
				switch tag {
				case "id":
					id := req.Header.Get(echo.HeaderXRequestID)
					if id == "" {
						id = res.Header().Get(echo.HeaderXRequestID)
					}
					return buf.WriteString(id)
				case "remote_ip":
					return buf.WriteString(c.RealIP())
				case "uri":
					return buf.WriteString(req.RequestURI)
				case "method":
					return buf.WriteString(req.Method)
				case "route":
					return buf.WriteString(c.Path())
				case "status":
					return buf.WriteString(strconv.Itoa(res.Status))
				case "error":
					if err != nil {
						return buf.WriteString(err.Error())
					}
				case "latency":
					return buf.WriteString(strconv.FormatInt(int64(stop.Sub(start)), 10))
				case "latency_human":
					return buf.WriteString(stop.Sub(start).String())
				case "bytes_out":
					return buf.WriteString(strconv.FormatInt(res.Size, 10))
				default:
					if strings.HasPrefix(tag, "query:") {
						return buf.WriteString(c.QueryParam(tag[6:]))
					}
				}
				return 0, nil
			})
			if tplErr != nil {
				return nil
			}

			entry := config.Logger.WithFields(logrus.Fields{
				"status": res.Status,
				"route":  c.Path(),
			})
			switch {
			case res.Status >= 500:
				entry.Error(buf.String())
			case err != nil:
				entry.Warn(buf.String())
			default:
				entry.Debug(buf.String())
			}

			// the error was already handled by c.Error
			return nil
		}
	}
}
