package kb

// defaultFAQs is the static knowledge base shipped with the service.
var defaultFAQs = []FAQ{
	{
		Question: "How do I reset my password?",
		Answer:   "Go to Settings → Account → Reset Password. You’ll receive an email with a reset link that expires in 15 minutes.",
		Tags:     []string{"account", "login", "password"},
	},
	{
		Question: "What’s included in the Pro plan?",
		Answer:   "Pro includes priority support, 10 team seats, advanced analytics, and 10,000 monthly tasks.",
		Tags:     []string{"billing", "pricing", "plans"},
	},
	{
		Question: "How do I cancel my subscription?",
		Answer:   "Open Billing → Manage Subscription → Cancel. Your access remains until the end of the current billing cycle.",
		Tags:     []string{"billing", "subscription", "cancel"},
	},
	{
		Question: "Do you support SSO?",
		Answer:   "Yes, SAML SSO is available on Enterprise. Contact sales for setup instructions.",
		Tags:     []string{"security", "sso", "enterprise"},
	},
	{
		Question: "Where can I view my invoices?",
		Answer:   "Invoices are available under Billing → Invoices. You can download PDFs for each month.",
		Tags:     []string{"billing", "invoices", "receipts"},
	},
	{
		Question: "Is there an API?",
		Answer:   "Yes, our REST API is documented at https://api.example.com/docs with examples and SDKs.",
		Tags:     []string{"api", "developer", "docs"},
	},

	// Account & Login
	{
		Question: "How do I create an account?",
		Answer:   "Click Sign Up on the top right, enter your email and a strong password, then verify your email to activate the account.",
		Tags:     []string{"account", "signup", "registration"},
	},
	{
		Question: "I didn’t receive the verification email",
		Answer:   "Check spam/junk folders, add no-reply@yourdomain.com to your contacts, then click Resend Verification from the banner on your dashboard.",
		Tags:     []string{"account", "verification", "email"},
	},
	{
		Question: "How do I change my email address?",
		Answer:   "Go to Settings → Account → Email, enter the new address, and confirm via the verification link we send.",
		Tags:     []string{"account", "email", "change"},
	},
	{
		Question: "How do I change my username?",
		Answer:   "Open Settings → Profile → Username. Usernames must be unique and 3–30 characters.",
		Tags:     []string{"account", "profile", "username"},
	},
	{
		Question: "How do I enable two-factor authentication (2FA/MFA)?",
		Answer:   "Go to Settings → Security → Two-Factor and follow the steps with an authenticator app. Save your backup codes in a secure place.",
		Tags:     []string{"security", "mfa", "2fa"},
	},
	{
		Question: "I lost access to my authenticator app",
		Answer:   "Use your backup codes. If unavailable, contact support and be prepared to verify your identity to recover access.",
		Tags:     []string{"security", "mfa", "recovery"},
	},
	{
		Question: "How do I delete my account?",
		Answer:   "Settings → Privacy → Delete Account will guide you through confirmation. This is permanent and removes your data after a grace period.",
		Tags:     []string{"privacy", "account", "delete"},
	},
	{
		Question: "How do I export my data?",
		Answer:   "Go to Settings → Privacy → Export Data to request a machine-readable export. We’ll email you when it’s ready.",
		Tags:     []string{"privacy", "export", "gdpr", "ccpa"},
	},

	// Billing & Subscriptions
	{
		Question: "Is there a free trial?",
		Answer:   "Yes, we offer a 14-day free trial on Starter and Pro plans. No commitment—cancel anytime during the trial.",
		Tags:     []string{"billing", "trial", "plans"},
	},
	{
		Question: "How do I upgrade or downgrade my plan?",
		Answer:   "Visit Billing → Plans and select the new plan. Changes take effect immediately and charges are prorated.",
		Tags:     []string{"billing", "plans", "upgrade", "downgrade"},
	},
	{
		Question: "How do I update my payment method?",
		Answer:   "Billing → Payment Methods → Add New, then set it as default. Existing subscriptions will use the new default on the next charge.",
		Tags:     []string{"billing", "payment", "card"},
	},
	{
		Question: "My payment failed. What should I do?",
		Answer:   "Update your card details and ensure sufficient funds. We’ll automatically retry over the next few days per our dunning schedule.",
		Tags:     []string{"billing", "payment", "failed"},
	},
	{
		Question: "Do you offer refunds?",
		Answer:   "We provide refunds for accidental charges within 7 days and case-by-case for service issues. Contact support with your invoice number.",
		Tags:     []string{"billing", "refund", "invoices"},
	},
	{
		Question: "How do coupons/discounts work?",
		Answer:   "Enter a valid coupon on the checkout page. Coupons apply to future invoices unless stated otherwise.",
		Tags:     []string{"billing", "coupon", "discount"},
	},
	{
		Question: "How do I add my tax/VAT ID?",
		Answer:   "Go to Billing → Billing Details and add your VAT or tax ID. It will appear on future invoices.",
		Tags:     []string{"billing", "tax", "vat"},
	},
	{
		Question: "How do I reactivate a canceled subscription?",
		Answer:   "Visit Billing → Manage Subscription → Reactivate. Your plan benefits will resume immediately.",
		Tags:     []string{"billing", "subscription", "reactivate"},
	},
	{
		Question: "What is your refund policy?",
		Answer:   "We offer refunds for accidental or duplicate charges within 7 days and case-by-case refunds for service issues. Physical items can be returned within 30 days in original condition for a refund once received/inspected. Digital goods are typically non-refundable unless required by local law or in cases of proven technical issues. For any refund, please include your invoice number and order ID.",
		Tags:     []string{"billing", "refund", "policy", "returns", "digital", "orders"},
	},
	{
		Question: "How do I request a refund for a subscription charge?",
		Answer:   "Go to Billing → Invoices, open the relevant invoice, and click Request Refund. Include a brief reason (e.g., accidental purchase, duplicate charge). Our team reviews requests within 2–3 business days. Approved refunds are issued to the original payment method and may take 5–10 business days to post depending on your bank.",
		Tags:     []string{"billing", "refund", "subscription", "invoices", "chargeback"},
	},
	{
		Question: "Can I get a refund for digital products?",
		Answer:   "Digital products and downloads are generally non-refundable once accessed. If you experienced a technical issue preventing use, contact support with error details and we will assist or issue a refund where appropriate and allowed by local law.",
		Tags:     []string{"billing", "refund", "digital", "downloads", "policy"},
	},

	// Orders, Shipping, Returns
	{
		Question: "Where is my order? How do I track it?",
		Answer:   "Use the tracking link in your shipment email or check Orders → Order Details in your account.",
		Tags:     []string{"orders", "shipping", "tracking"},
	},
	{
		Question: "Can I change my shipping address after ordering?",
		Answer:   "If the order isn’t shipped, update it from Orders → Order Details. Otherwise, contact the carrier after you get a tracking number.",
		Tags:     []string{"orders", "shipping", "address"},
	},
	{
		Question: "Do you ship internationally?",
		Answer:   "Yes, we ship to most countries. Shipping costs and times vary and are shown at checkout.",
		Tags:     []string{"orders", "shipping", "international"},
	},
	{
		Question: "What’s your return policy?",
		Answer:   "Returns are accepted within 30 days in original condition. Start at Orders → Return/Exchange, and use the provided label.",
		Tags:     []string{"returns", "refund", "exchange"},
	},
	{
		Question: "My item arrived damaged",
		Answer:   "Start a return or replacement from Orders → Return/Exchange and attach photos. We’ll prioritize damaged item resolutions.",
		Tags:     []string{"returns", "damaged", "replacement"},
	},
	{
		Question: "How do I cancel my order?",
		Answer:   "If not shipped, cancel from Orders → Order Details → Cancel Order. If shipped, start a return after delivery.",
		Tags:     []string{"orders", "cancel", "returns"},
	},

	// Technical & Product
	{
		Question: "The app isn’t loading or shows a blank screen",
		Answer:   "Try a hard refresh, clear cache/cookies, and ensure your browser is up to date. Then try again in a private window.",
		Tags:     []string{"technical", "browser", "cache"},
	},
	{
		Question: "Which browsers do you support?",
		Answer:   "We support the latest two major versions of Chrome, Safari, Edge, and Firefox.",
		Tags:     []string{"technical", "browsers", "support"},
	},
	{
		Question: "Is there a mobile app?",
		Answer:   "We offer iOS and Android apps. Search for our brand in the App Store or Google Play.",
		Tags:     []string{"technical", "mobile", "apps"},
	},
	{
		Question: "How do I manage notifications?",
		Answer:   "Go to Settings → Notifications to choose email, push, or in-app alerts per event.",
		Tags:     []string{"notifications", "settings", "preferences"},
	},
	{
		Question: "How do I change language or timezone?",
		Answer:   "Settings → Preferences lets you set language, date/time format, and timezone.",
		Tags:     []string{"settings", "language", "timezone"},
	},

	// API, Webhooks, Developer
	{
		Question: "Where can I create API keys?",
		Answer:   "Go to Developer → API Keys → Create Key. Store it securely and follow least-privilege practices.",
		Tags:     []string{"api", "keys", "developer"},
	},
	{
		Question: "What are your API rate limits?",
		Answer:   "Default rate limit is 60 requests per minute per key. Enterprise tiers can request higher limits.",
		Tags:     []string{"api", "ratelimits", "limits"},
	},
	{
		Question: "How do I set up webhooks?",
		Answer:   "Developer → Webhooks → Create Endpoint, choose events, and verify signatures with the secret we provide.",
		Tags:     []string{"api", "webhooks", "developer"},
	},
	{
		Question: "How do I rotate an API key safely?",
		Answer:   "Create a new key, update your services to use it, then revoke the old key. Avoid downtime by overlapping briefly.",
		Tags:     []string{"api", "keys", "security"},
	},

	// Security & Compliance
	{
		Question: "What security measures do you have in place?",
		Answer:   "We follow industry best practices including encryption at rest/in-transit, regular audits, and access controls. See our Security page for details.",
		Tags:     []string{"security", "encryption", "audits"},
	},
	{
		Question: "Do you support SCIM for user provisioning?",
		Answer:   "Yes, SCIM is available on Enterprise. Contact sales to enable and receive setup documentation.",
		Tags:     []string{"security", "scim", "enterprise"},
	},
	{
		Question: "How do I report a security vulnerability?",
		Answer:   "Email security@yourdomain.com with details. We run a responsible disclosure program and will follow up promptly.",
		Tags:     []string{"security", "vulnerability", "bug-bounty"},
	},
	{
		Question: "How do I submit a GDPR or CCPA request?",
		Answer:   "Use Settings → Privacy → Data Request to submit access, correction, or deletion requests. We’ll respond within legal timelines.",
		Tags:     []string{"privacy", "gdpr", "ccpa"},
	},
	{
		Question: "Where is my data stored?",
		Answer:   "Data is stored in regional data centers in the US and EU. Enterprise customers can request specific residency.",
		Tags:     []string{"privacy", "residency", "compliance"},
	},

	// Status, Uptime, Support
	{
		Question: "Where can I check system status and incidents?",
		Answer:   "Visit our Status Page at https://status.example.com for real-time uptime and incident updates.",
		Tags:     []string{"status", "uptime", "incidents"},
	},
	{
		Question: "Do you have an SLA?",
		Answer:   "Business and Enterprise plans include SLAs. Review the SLA document on our Pricing or Legal pages.",
		Tags:     []string{"sla", "uptime", "enterprise"},
	},
	{
		Question: "What are your support hours?",
		Answer:   "Standard support is available Mon–Fri, 9am–6pm in your region. Pro/Enterprise includes 24/7 critical incident support.",
		Tags:     []string{"support", "hours", "contact"},
	},
	{
		Question: "How do I contact support or escalate an issue?",
		Answer:   "Use Help → Contact Support from the app. Include steps to reproduce and relevant screenshots. We escalate urgent issues automatically.",
		Tags:     []string{"support", "escalation", "contact"},
	},
	{
		Question: "How do I submit a feature request?",
		Answer:   "Open Help → Feedback → Feature Request. Our product team reviews requests weekly.",
		Tags:     []string{"feedback", "feature", "product"},
	},
	{
		Question: "How do I report a bug?",
		Answer:   "Use Help → Feedback → Bug Report and include console logs or errors if possible.",
		Tags:     []string{"feedback", "bug", "quality"},
	},

	// More account/billing specifics
	{
		Question: "Can I pause my subscription instead of canceling?",
		Answer:   "Yes, you can pause for up to 3 months from Billing → Manage Subscription. Billing resumes automatically unless you unpause earlier.",
		Tags:     []string{"billing", "pause", "subscription"},
	},
	{
		Question: "Can multiple team members use one account?",
		Answer:   "We recommend individual accounts and team seats for security and auditability. Sharing a single login isn’t supported.",
		Tags:     []string{"account", "teams", "security"},
	},
	{
		Question: "Why am I being charged sales tax?",
		Answer:   "We collect applicable taxes based on your billing address and local regulations.",
		Tags:     []string{"billing", "tax", "compliance"},
	},
	{
		Question: "Can I get a quote or purchase order (PO)?",
		Answer:   "Yes, sales can generate quotes and accept POs for Business and Enterprise plans.",
		Tags:     []string{"billing", "sales", "quote"},
	},
	{
		Question: "How do I change the account owner?",
		Answer:   "The current owner can transfer ownership from Settings → Team → Transfer Ownership.",
		Tags:     []string{"account", "ownership", "teams"},
	},
}
