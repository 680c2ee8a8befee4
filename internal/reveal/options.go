package reveal

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// Options builds a config and attribute list from "key=value" pairs, the
// form used by the template helpers. Recognized keys:
//
//	delay, duration   seconds
//	y                 offset in pixels
//	once              bool
//	amount            visibility threshold
//	exit-opacity      exit frame opacity
//	exit-y            exit frame offset
//
// Every other pair becomes an attribute; a bare key is an empty attribute.
func Options(pairs ...string) (Config, Attrs, error) {
	cfg := DefaultConfig()
	var attrs Attrs

	for _, pair := range pairs {
		key, value, _ := strings.Cut(pair, "=")
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}

		var err error
		switch key {
		case "delay":
			cfg.Delay, err = parseSeconds(value)
		case "duration":
			cfg.Duration, err = parseSeconds(value)
		case "y":
			cfg.OffsetY, err = strconv.ParseFloat(value, 64)
		case "once":
			cfg.Once, err = strconv.ParseBool(value)
		case "amount":
			cfg.Threshold, err = strconv.ParseFloat(value, 64)
		case "exit-opacity":
			exit := exitFrame(&cfg)
			exit.Opacity, err = strconv.ParseFloat(value, 64)
		case "exit-y":
			exit := exitFrame(&cfg)
			exit.OffsetY, err = strconv.ParseFloat(value, 64)
		default:
			attrs = append(attrs, Attr{Name: key, Value: value})
		}
		if err != nil {
			return Config{}, nil, fmt.Errorf("reveal option %q: %w", pair, err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, nil, err
	}
	return cfg, attrs, nil
}

func exitFrame(cfg *Config) *Frame {
	if cfg.Exit == nil {
		cfg.Exit = &Frame{}
	}
	return cfg.Exit
}

func parseSeconds(s string) (time.Duration, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	return time.Duration(math.Round(f * float64(time.Second))), nil
}
