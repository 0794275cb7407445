package content

import "strings"

type LegalPage struct {
	Slug    string `json:"slug"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

var NavLinks = []string{"Home", "Menu", "Reservations", "Chefs", "Track Order"}

var SocialLinks = map[string]string{
	"instagram": "https://www.instagram.com/shrlqlwb3849?igsh=aXh3b2Ricm41NWp2",
	"tiktok":    "https://www.tiktok.com/@softscissorsasmr0?_r=1&_t=ZN-91kPfB2vrAU",
	"facebook":  "https://www.facebook.com/profile.php?id=100079676007045&mibextid=rS40aB7S9Ucbxw6v",
	"telegram":  "https://t.me/+212619110750",
}

var legalPages = map[string]LegalPage{
	"privacy": {
		Slug:  "privacy",
		Title: "Privacy Policy",
		Content: `
Last Updated: 2026

1. Data Collection
We collect information you provide directly to us when you make a reservation, order food, or contact us. This includes name, email address, phone number, and payment information.

2. Use of Information
We use your information to provide, maintain, and improve our services, process transactions, and communicate with you.

3. Data Storage
Your data is stored securely on encrypted servers. We retain your personal information only for as long as necessary to fulfill the purposes we collected it for.

4. Contact
For privacy concerns, please contact privacy@neodine.com.
`,
	},
	"terms": {
		Slug:  "terms",
		Title: "Terms of Service",
		Content: `
Last Updated: 2026

1. Acceptance of Terms
By accessing or using our website and services, you agree to be bound by these Terms.

2. Use of Services
You agree to use our services only for lawful purposes and in accordance with these Terms.

3. Reservations and Orders
All reservations and orders are subject to availability. We reserve the right to refuse service to anyone.

4. Liability
NEO DINE is not liable for any indirect, incidental, special, consequential or punitive damages resulting from your use of our services.
`,
	},
	"cookies": {
		Slug:  "cookies",
		Title: "Cookie Policy",
		Content: `
Last Updated: 2026

1. What are cookies?
Cookies are small text files stored on your device when you visit our website.

2. Types of Cookies We Use
- Essential Cookies: Necessary for the website to function (e.g., cart, secure login).
- Analytics Cookies: Help us understand how visitors interact with the website.
- Marketing Cookies: Used to track visitors across websites to display relevant ads.

3. Managing Cookies
You can control and/or delete cookies as you wish. You can delete all cookies that are already on your computer and you can set most browsers to prevent them from being placed.
`,
	},
}

// Legal returns the legal page for slug (privacy, terms, cookies).
func Legal(slug string) (LegalPage, bool) {
	p, ok := legalPages[strings.ToLower(slug)]
	if !ok {
		return LegalPage{}, false
	}
	p.Content = strings.TrimSpace(p.Content)
	return p, true
}
