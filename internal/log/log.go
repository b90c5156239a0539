package log

import (
	"encoding/json"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
)

// Fields carries event-specific attributes of a log line.
type Fields = map[string]any

type entry struct {
	TS     string `json:"ts"`
	Level  string `json:"level"`
	ReqID  string `json:"req_id,omitempty"`
	IP     string `json:"ip,omitempty"`
	Method string `json:"method,omitempty"`
	Path   string `json:"path,omitempty"`
	Action string `json:"action,omitempty"`
	Status int    `json:"status,omitempty"`
	Err    string `json:"err,omitempty"`
	Fields Fields `json:"fields,omitempty"`
}

func write(level string, c *fiber.Ctx, action string, err error, fields Fields) {
	e := entry{TS: time.Now().UTC().Format(time.RFC3339), Level: level, Action: action, Fields: fields}
	if c != nil {
		e.IP = c.IP()
		e.Method = c.Method()
		e.Path = c.Path()
		e.Status = c.Response().StatusCode()
		if rid, ok := c.Locals("requestid").(string); ok && rid != "" {
			e.ReqID = rid
		}
	}
	if err != nil {
		e.Err = err.Error()
	}
	b, merr := json.Marshal(e)
	if merr != nil {
		// keep the event; only the fields that cannot be encoded are lost
		e.Fields = nil
		e.Err = joinErr(e.Err, "log fields: "+merr.Error())
		b, _ = json.Marshal(e)
	}
	log.Println(string(b))
}

func joinErr(prev, next string) string {
	if prev == "" {
		return next
	}
	return prev + "; " + next
}

// Info records diagnostic events such as search submissions.
func Info(c *fiber.Ctx, action string, fields Fields) { write("info", c, action, nil, fields) }

// Audit records user actions worth tracing (favorite toggles).
func Audit(c *fiber.Ctx, action string, fields Fields) { write("audit", c, action, nil, fields) }

// Security records rejected or suspicious input at warn level.
func Security(c *fiber.Ctx, action string, fields Fields) { write("warn", c, action, nil, fields) }

// Error records a failure together with its error text.
func Error(c *fiber.Ctx, action string, err error, fields Fields) {
	write("error", c, action, err, fields)
}
