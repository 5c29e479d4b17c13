package mailer

import (
	"strings"

	"studio-api/internal/model"
)

// Render substitutes {var} placeholders in a template body. Unknown
// placeholders are left as-is so a missing variable is visible in the
// delivered email instead of silently vanishing.
func Render(content string, vars map[string]string) string {
	replacements := make([]string, 0, len(vars)*2)
	for name, value := range vars {
		replacements = append(replacements, "{"+name+"}", value)
	}
	return strings.NewReplacer(replacements...).Replace(content)
}

// RenderBilingual renders the Ukrainian body followed by the English one,
// separated by a horizontal rule, the way the studio sends all
// transactional mail.
func RenderBilingual(tpl *model.EmailTemplate, vars map[string]string) (subject string, body string) {
	subject = Render(tpl.SubjectUK, vars)
	body = Render(tpl.ContentUK, vars) + "\n<hr>\n" + Render(tpl.ContentEN, vars)
	return subject, body
}

// DefaultTemplates returns the built-in transactional templates. The worker
// upserts them at start so the table can be edited afterwards without
// redeploying.
func DefaultTemplates() []model.EmailTemplate {
	return []model.EmailTemplate{
		{
			Name:      "quote_admin_notification",
			SubjectUK: "Нова заявка на прорахунок: {name}",
			SubjectEN: "New quote application: {name}",
			ContentUK: "<h2>Нова заявка на прорахунок</h2><p>Ім'я: {name}</p><p>Email: {email}</p><p>Тип проєкту: {project_type}</p><p>Бюджет: {budget}</p><p>Опис: {description}</p>",
			ContentEN: "<h2>New quote application</h2><p>Name: {name}</p><p>Email: {email}</p><p>Project type: {project_type}</p><p>Budget: {budget}</p><p>Description: {description}</p>",
			Variables: model.StringList{"name", "email", "project_type", "budget", "description"},
			IsActive:  true,
		},
		{
			Name:      "quote_customer_confirmation",
			SubjectUK: "Ми отримали вашу заявку",
			SubjectEN: "We received your application",
			ContentUK: "<p>Вітаємо, {name}!</p><p>Дякуємо за звернення. Ми розглянемо вашу заявку на {project_type} і зв'яжемося з вами найближчим часом.</p>",
			ContentEN: "<p>Hello, {name}!</p><p>Thank you for reaching out. We will review your {project_type} request and get back to you shortly.</p>",
			Variables: model.StringList{"name", "project_type"},
			IsActive:  true,
		},
		{
			Name:      "consultation_admin_notification",
			SubjectUK: "Нова заявка на консультацію: {first_name} {last_name}",
			SubjectEN: "New consultation request: {first_name} {last_name}",
			ContentUK: "<h2>Нова заявка на консультацію</h2><p>Ім'я: {first_name} {last_name}</p><p>Телефон: {phone}</p><p>Telegram: {telegram}</p><p>Повідомлення: {message}</p>",
			ContentEN: "<h2>New consultation request</h2><p>Name: {first_name} {last_name}</p><p>Phone: {phone}</p><p>Telegram: {telegram}</p><p>Message: {message}</p>",
			Variables: model.StringList{"first_name", "last_name", "phone", "telegram", "message"},
			IsActive:  true,
		},
		{
			Name:      "review_admin_notification",
			SubjectUK: "Новий відгук очікує модерації",
			SubjectEN: "New review awaiting moderation",
			ContentUK: "<h2>Новий відгук</h2><p>Автор: {author_name} ({author_email})</p><p>Оцінка: {rating}</p>",
			ContentEN: "<h2>New review</h2><p>Author: {author_name} ({author_email})</p><p>Rating: {rating}</p>",
			Variables: model.StringList{"author_name", "author_email", "rating"},
			IsActive:  true,
		},
	}
}
