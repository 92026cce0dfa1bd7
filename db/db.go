package db

import (
	"encoding/json"
	"errors"
	"net"

	"github.com/cbsinteractive/timecode-api/timecode"
	"github.com/go-redis/redis"
)

var (
	ErrAnchorNotFound = errors.New("anchor not found")
)

// Anchor is the starting timecode of a named source. Reels routinely
// start at non-zero timecode; rate conversions are anchored to the
// start both streams share, so the start has to be kept somewhere by
// name.
type Anchor struct {
	Name  string                           `json:"name"`
	Start timecode.Timecode[timecode.Rate] `json:"start"`
}

// Options configure the backing redis. The zero value connects to a
// local instance.
type Options struct {
	Addr     string `envconfig:"REDIS_ADDR" default:"127.0.0.1:6379"`
	Password string `envconfig:"REDIS_PASSWORD"`
	DB       int    `envconfig:"REDIS_DB"`
}

func NewClient(opt *Options) (*Client, error) {
	if opt == nil {
		opt = &Options{}
	}
	if opt.Addr == "" {
		opt.Addr = "localhost:6379"
	}
	_, _, err := net.SplitHostPort(opt.Addr)
	if err != nil {
		opt.Addr = net.JoinHostPort(opt.Addr, "6379")
	}
	c := &Client{
		rc: redis.NewClient(&redis.Options{
			Addr:     opt.Addr,
			DB:       opt.DB,
			Password: opt.Password,
		}),
	}
	return c, nil
}

// Client stores anchors in redis as JSON values keyed by name. The
// timecode travels in its composite string form, so a corrupted or
// hand-edited value fails validation on the way out instead of
// poisoning later arithmetic.
type Client struct {
	rc *redis.Client
}

func (c *Client) Anchor(name string) (Anchor, error) {
	val, err := c.rc.Get(key(name)).Result()
	if err == redis.Nil {
		return Anchor{}, ErrAnchorNotFound
	} else if err != nil {
		return Anchor{}, err
	}
	var a Anchor
	if err := json.Unmarshal([]byte(val), &a); err != nil {
		return Anchor{}, err
	}
	return a, nil
}

func (c *Client) PutAnchor(a Anchor) error {
	data, err := json.Marshal(a)
	if err != nil {
		return err
	}
	return c.rc.Set(key(a.Name), string(data), 0).Err()
}

func (c *Client) DeleteAnchor(name string) error {
	n, err := c.rc.Del(key(name)).Result()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrAnchorNotFound
	}
	return nil
}

func key(name string) string {
	return "anchor:" + name
}
