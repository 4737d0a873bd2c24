package ban

import (
	"context"
	"encoding/json"
	"fmt"
	"net/smtp"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/dimasarya/panelstore/internal/config"
	"github.com/dimasarya/panelstore/internal/logger"
)

// Failed-login throttling. Strikes are counted per client IP in redis; too
// many strikes inside the window bans the IP for BanDuration. The whole
// package is a no-op when no redis client is configured, so the storefront
// runs (and tests run) without a redis instance.

const (
	strikeKeyPrefix = "login:strikes:"
	banKeyPrefix    = "login:ban:"
	banLogKey       = "login:banlog"

	// MaxStrikes failed logins within StrikeWindow ban the IP.
	MaxStrikes   = 5
	StrikeWindow = 15 * time.Minute
	BanDuration  = 15 * time.Minute
)

var (
	rdb   *redis.Client
	ctx   context.Context
	alert config.AlertConfig
	log   = logger.Nop()
)

// Setup wires the redis client and alert settings. A nil client disables
// the service.
func Setup(client *redis.Client, c context.Context, alertCfg config.AlertConfig, l *logger.Logger) {
	rdb = client
	ctx = c
	alert = alertCfg
	if l != nil {
		log = l
	}
}

// Enabled reports whether the ban service has a redis backend.
func Enabled() bool {
	return rdb != nil
}

// IsBanned reports whether the IP is currently banned. Redis errors fail
// open: a broken redis must not lock admins out.
func IsBanned(ip string) bool {
	if rdb == nil {
		return false
	}
	n, err := rdb.Exists(ctx, banKeyPrefix+ip).Result()
	if err != nil {
		log.Warnw("ban lookup failed", "ip", ip, "error", err)
		return false
	}
	return n > 0
}

// RecordFailure counts a failed login for the IP and bans it once it
// reaches MaxStrikes within the window.
func RecordFailure(ip, route string) {
	if rdb == nil {
		return
	}

	key := strikeKeyPrefix + ip
	strikes, err := rdb.Incr(ctx, key).Result()
	if err != nil {
		log.Warnw("strike count failed", "ip", ip, "error", err)
		return
	}
	if strikes == 1 {
		rdb.Expire(ctx, key, StrikeWindow)
	}

	if strikes >= MaxStrikes {
		if err := rdb.Set(ctx, banKeyPrefix+ip, strikes, BanDuration).Err(); err != nil {
			log.Warnw("ban set failed", "ip", ip, "error", err)
			return
		}
		rdb.Del(ctx, key)
		log.Infow("client banned after repeated failed logins", "ip", ip, "strikes", strikes)
		logBanEvent(ip, route, int(strikes))
		sendBanAlertEmail(ip, route, int(strikes))
	}
}

// Reset clears the strike counter for an IP, called after a successful login.
func Reset(ip string) {
	if rdb == nil {
		return
	}
	rdb.Del(ctx, strikeKeyPrefix+ip)
}

// BanLogEntry is one ban occurrence, kept in a redis list for inspection.
type BanLogEntry struct {
	Target  string    `json:"target"`
	Route   string    `json:"route"`
	Strikes int       `json:"strikes"`
	Time    time.Time `json:"time"`
}

func logBanEvent(target, route string, strikes int) {
	entry := BanLogEntry{Target: target, Route: route, Strikes: strikes, Time: time.Now()}
	data, _ := json.Marshal(entry)
	_ = rdb.RPush(ctx, banLogKey, data).Err()
}

func sendBanAlertEmail(ip, route string, strikes int) {
	if alert.SMTPServer == "" || alert.To == "" {
		return
	}

	subject := fmt.Sprintf("BAN ALERT: %s blocked", ip)
	body := fmt.Sprintf("Target: %s\nRoute: %s\nStrikes: %d\nTime: %s",
		ip, route, strikes, time.Now().Format(time.RFC3339))
	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s",
		alert.From, alert.To, subject, body)

	addr := alert.SMTPServer + ":" + alert.SMTPPort
	var auth smtp.Auth
	if !alert.AuthDisabled {
		auth = smtp.PlainAuth("", alert.SMTPUser, alert.SMTPPassword, alert.SMTPServer)
	}

	go func() {
		if err := smtp.SendMail(addr, auth, alert.From, []string{alert.To}, []byte(msg)); err != nil {
			log.Warnw("failed to send ban alert email", "error", err)
		}
	}()
}
