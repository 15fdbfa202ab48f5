// Package telegram is the bot frontend: send a photo of a meal, get the
// pregnancy risk verdict back.
package telegram

import (
	"context"
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"food-checker/api/internal/assess"
	"food-checker/api/internal/catalog"
)

type Router struct {
	Bot     *tgbotapi.BotAPI
	Engine  assess.Engine
	Catalog catalog.Catalog
}

// Run consumes updates from long polling until the channel closes.
func (r *Router) Run() {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 30
	for upd := range r.Bot.GetUpdatesChan(u) {
		r.HandleUpdate(upd)
	}
}

func (r *Router) HandleUpdate(upd tgbotapi.Update) {
	if upd.Message == nil {
		return
	}
	cid := upd.Message.Chat.ID

	if upd.Message.IsCommand() {
		switch upd.Message.Command() {
		case "start":
			r.send(cid, "食事の写真を送ってください。妊娠中に避けるべき食品が含まれていないかチェックします。\nコマンド: /health")
		case "health":
			r.send(cid, "✅ OK: "+r.Engine.Name())
		default:
			r.send(cid, "不明なコマンドです")
		}
		return
	}

	if len(upd.Message.Photo) > 0 {
		r.acceptPhoto(*upd.Message)
		return
	}

	// Plain text: look the food name up against the catalog keywords.
	if txt := upd.Message.Text; txt != "" {
		if cat, ok := r.Catalog.MatchKeyword(txt); ok {
			r.send(cid, cat.Message+"\n\n"+cat.Details)
		} else {
			r.send(cid, assess.MessageSafe)
		}
	}
}

func (r *Router) assessAndReply(ctx context.Context, cid int64, imageDataURI string) {
	res, err := assess.Normalize(r.Engine.Assess(ctx, imageDataURI))
	if err != nil {
		r.sendError(cid, err)
		return
	}
	txt := res.Message
	if res.Details != "" {
		txt += "\n\n" + res.Details
	}
	r.send(cid, txt)
}

func (r *Router) send(cid int64, text string) {
	if _, err := r.Bot.Send(tgbotapi.NewMessage(cid, text)); err != nil {
		log.Printf("telegram send: %v", err)
	}
}

func (r *Router) sendError(cid int64, err error) {
	r.send(cid, "分析中にエラーが発生しました: "+err.Error())
}
