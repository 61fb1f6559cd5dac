// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package nlp

// The category tables below are the engine's fixed vocabulary. Terms are
// stored lower case; matching is substring-based over lower-cased input,
// so multi-word terms ("spring boot") match without tokenization. Table
// order is the tie-break order for equal-confidence matches.

var programmingLanguages = []string{
	"python", "javascript", "java", "c++", "c#", "c", "go", "rust", "swift", "kotlin",
	"typescript", "php", "ruby", "scala", "r", "matlab", "perl", "lua", "dart", "julia",
	"haskell", "erlang", "elixir", "clojure", "f#", "ocaml", "scheme", "lisp", "prolog",
	"fortran", "cobol", "pascal", "delphi", "visual basic", "vb.net", "assembly", "bash",
	"powershell", "sql", "plsql", "tsql", "nosql", "graphql", "html", "css", "sass",
	"less", "stylus", "xml", "json", "yaml", "toml", "ini", "csv", "markdown", "latex",
}

var frameworksLibraries = []string{
	// Python
	"django", "flask", "fastapi", "tornado", "pyramid", "bottle", "cherrypy",
	"numpy", "pandas", "matplotlib", "seaborn", "plotly", "bokeh", "scipy",
	"scikit-learn", "tensorflow", "pytorch", "keras", "theano", "caffe",
	"opencv", "pillow", "requests", "beautifulsoup", "scrapy", "selenium",
	"pytest", "unittest", "nose", "tox", "black", "flake8", "mypy",

	// JavaScript / Node.js
	"react", "vue", "angular", "svelte", "ember", "backbone", "jquery",
	"express", "koa", "hapi", "fastify", "nest", "next.js", "nuxt",
	"gatsby", "webpack", "parcel", "rollup", "vite", "babel", "eslint",
	"jest", "mocha", "chai", "cypress", "playwright", "puppeteer",
	"lodash", "moment", "axios", "fetch", "socket.io", "three.js", "d3",

	// Java
	"spring", "spring boot", "hibernate", "struts", "jsf", "wicket",
	"junit", "testng", "mockito", "maven", "gradle", "ant",

	// .NET
	"asp.net", ".net core", "entity framework", "xamarin", "blazor",
	"nunit", "xunit", "moq", "autofac", "ninject",

	// Mobile and game engines
	"react native", "flutter", "ionic", "cordova", "phonegap",
	"unity", "unreal engine",

	// CSS / UI
	"bootstrap", "tailwind", "bulma", "foundation", "semantic ui",
	"material ui", "ant design", "chakra ui", "styled-components",

	// Database clients and ORMs
	"mongoose", "sequelize", "typeorm", "prisma", "knex", "bookshelf",
}

var platformsServices = []string{
	// Cloud platforms
	"aws", "amazon web services", "azure", "google cloud", "gcp",
	"digitalocean", "linode", "vultr", "heroku", "netlify", "vercel",
	"cloudflare", "fastly", "akamai",

	// Development platforms
	"github", "gitlab", "bitbucket", "sourceforge", "codeberg",
	"docker", "kubernetes", "openshift", "rancher", "nomad",
	"jenkins", "travis ci", "circle ci", "github actions", "gitlab ci",

	// Databases
	"mysql", "postgresql", "mongodb", "redis", "elasticsearch",
	"cassandra", "dynamodb", "firestore", "supabase", "planetscale",
	"sqlite", "oracle", "sql server", "mariadb", "couchdb",

	// Message queues
	"rabbitmq", "apache kafka", "redis pub/sub", "amazon sqs",
	"google pub/sub", "apache pulsar", "nats", "zeromq",

	// Monitoring
	"datadog", "new relic", "splunk", "elastic stack", "prometheus",
	"grafana", "kibana", "logstash", "fluentd", "sentry",

	// APIs and services
	"stripe", "paypal", "twilio", "sendgrid", "mailgun", "auth0",
	"firebase", "amplify", "sanity", "contentful", "strapi",
}

var companiesBrands = []string{
	"google", "microsoft", "amazon", "apple", "meta", "facebook",
	"netflix", "uber", "airbnb", "spotify", "slack", "discord",
	"zoom", "salesforce", "oracle", "ibm", "intel", "nvidia",
	"amd", "qualcomm", "tesla", "spacex", "openai", "anthropic",
	"hugging face", "databricks", "snowflake", "palantir", "stripe",
	"shopify", "square", "paypal", "adobe", "autodesk", "unity",
	"epic games", "valve", "steam", "github", "gitlab", "atlassian",
	"jira", "confluence", "trello", "notion", "airtable", "figma",
	"sketch", "canva", "dropbox", "box", "onedrive", "icloud",
}

var fileFormats = []string{
	"json", "xml", "yaml", "toml", "ini", "csv", "tsv", "excel",
	"pdf", "docx", "pptx", "xlsx", "odt", "ods", "odp",
	"html", "css", "js", "ts", "jsx", "tsx", "vue", "svelte",
	"py", "java", "cpp", "c", "h", "hpp", "cs", "go", "rs",
	"swift", "kt", "php", "rb", "scala", "r", "matlab", "m",
	"sql", "md", "txt", "log", "conf", "config", "env",
	"dockerfile", "docker-compose", "makefile", "cmake",
	"png", "jpg", "jpeg", "gif", "svg", "webp", "ico",
	"mp4", "avi", "mov", "wmv", "flv", "webm", "mkv",
	"mp3", "wav", "flac", "aac", "ogg", "wma",
	"zip", "tar", "gz", "bz2", "xz", "7z", "rar",
}

var apisProtocols = []string{
	"rest", "restful", "graphql", "grpc", "soap", "websocket",
	"http", "https", "ftp", "sftp", "ssh", "tcp", "udp",
	"smtp", "pop3", "imap", "dns", "dhcp", "snmp",
	"oauth", "oauth2", "jwt", "saml", "openid", "ldap",
	"api", "webhook", "rpc", "json-rpc", "xml-rpc",
	"mqtt", "amqp", "stomp", "sse",
}

var technicalConcepts = []string{
	"machine learning", "deep learning", "artificial intelligence",
	"neural network", "computer vision", "natural language processing",
	"data science", "big data", "data mining", "data analytics",
	"cloud computing", "edge computing", "serverless", "microservices",
	"containerization", "virtualization", "devops", "ci/cd",
	"agile", "scrum", "kanban", "test driven development", "tdd",
	"behavior driven development", "bdd", "domain driven design", "ddd",
	"clean architecture", "solid principles", "design patterns",
	"blockchain", "cryptocurrency", "smart contracts", "defi",
	"web3", "metaverse", "augmented reality", "virtual reality",
	"internet of things", "iot", "cybersecurity", "penetration testing",
	"ethical hacking", "encryption", "cryptography", "ssl", "tls",
	"load balancing", "caching", "cdn", "database optimization",
	"performance tuning", "scalability", "high availability",
	"disaster recovery", "backup", "monitoring", "logging",
	"debugging", "profiling", "code review", "pair programming",
	"open source", "version control", "git", "continuous integration",
	"continuous deployment", "infrastructure as code", "automation",
}
