// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package mail

import (
	"fmt"
	"html"
	"time"
)

// Mail bodies are the user-visible Japanese content of the board; only the
// surrounding code is English. All interpolated values are HTML-escaped.

// AuthorNotification builds the mail sent to a post's author when someone
// contacts them through the board.
func AuthorNotification(postTitle, categoryLabel, senderName, senderEmail, message string) string {
	return fmt.Sprintf(`
		<h2>JPAMatch ビリヤード仲間探し掲示板からの連絡</h2>
		<p><strong>投稿タイトル:</strong> %s</p>
		<p><strong>投稿タイプ:</strong> %s</p>
		<p><strong>連絡者:</strong> %s (%s)</p>
		<p><strong>メッセージ:</strong></p>
		<p>%s</p>
		<hr>
		<p>このメールはJPAMatchビリヤード仲間探し掲示板システムから自動送信されています。</p>
		<p>返信する場合は、上記の連絡者メールアドレスに直接返信してください。</p>
		<p>ビリヤードを通じて素晴らしい仲間との出会いがありますように！</p>
	`,
		html.EscapeString(postTitle),
		html.EscapeString(categoryLabel),
		html.EscapeString(senderName),
		html.EscapeString(senderEmail),
		html.EscapeString(message),
	)
}

// SenderConfirmation builds the confirmation mail sent back to the person
// who used the contact form.
func SenderConfirmation(postTitle, authorName, message string) string {
	return fmt.Sprintf(`
		<h2>JPAMatch 連絡送信完了のお知らせ</h2>
		<p>投稿「%s」（投稿者: %s）への連絡を送信しました。</p>
		<p><strong>送信したメッセージ:</strong></p>
		<p>%s</p>
		<hr>
		<p>このメールはJPAMatchビリヤード仲間探し掲示板システムから自動送信されています。</p>
		<p>投稿者からの返信をお待ちください。</p>
	`,
		html.EscapeString(postTitle),
		html.EscapeString(authorName),
		html.EscapeString(message),
	)
}

// TestBody builds the body for the SMTP smoke-test endpoint.
func TestBody(now time.Time) string {
	return fmt.Sprintf(`
		<h2>メール送信テスト</h2>
		<p>このメールが届いたら、メール送信機能は正常に動作しています。</p>
		<p>送信時刻: %s</p>
	`, now.Format("2006/01/02 15:04:05"))
}

// TestSubject is the subject of the smoke-test mail.
const TestSubject = "JPAMatch メール送信テスト"

// ConfirmationSubject is the subject of the sender confirmation mail.
const ConfirmationSubject = "【JPAMatch】連絡送信完了のお知らせ"
