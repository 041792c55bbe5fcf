package scaffold

const siteYamlContent = `author: Your Name
subtitle: A makesite site
html_lang: en
date_format: January 2, 2006

envs:
  default:
    documentroot: _site
    base_path: ""
    site_url: http://localhost:1313
  dev:
    documentroot: _site_dev
    base_path: ""
    site_url: http://localhost:1313
  prod:
    documentroot: _site_prod
    base_path: ""
    site_url: https://example.com

sections:
  - section: blog
    name: Blog
    files_extension: .md
    recent_items: 5

pages:
  - page: about
    name: About
`

const indexHTMLContent = `{{ set "title" "Home" }}{{ include "md_header.html" }}
<p>Welcome to your new site. This landing page embeds the latest posts:</p>
{{ .recent_blog }}
{{ include "md_footer.html" }}
`

const aboutHTMLContent = `{{ set "title" "About" }}{{ include "md_header.html" }}
<p>Tell your readers who you are.</p>
{{ include "md_footer.html" }}
`

const samplePostContent = `{{ set "title" "Welcome" }}
{{/* variables */}}
This site was just scaffolded with **makesite**. Edit or delete this post
under ` + "`content/blog/`" + ` to get going.
`

const mdHeaderContent = `<!DOCTYPE html>
<html lang="{{ .html_lang }}">
<head>
<meta charset="utf-8">
<title>{{ .title }} &middot; {{ .subtitle }}</title>
<link rel="stylesheet" href="{{ .base_path }}/css/style.css">
</head>
<body>
<header><a href="{{ .base_path }}/">{{ .subtitle }}</a></header>
<main>
<h1 id="title">{{ .title }}</h1>
{{ if .date }}<p class="meta">{{ .date }} &middot; {{ .author }}</p>{{ end }}
<article id="post">
`

const mdFooterContent = `</article>
</main>
<footer>&copy; {{ .current_year }} {{ .author }}</footer>
</body>
</html>
`

const listContent = `{{ include "md_header.html" }}
{{ .content }}
{{ include "md_footer.html" }}
`

const listRecentContent = `<section class="recent">
<h2>Recent {{ .title }}</h2>
{{ .content }}
<p><a href="{{ .base_path }}/{{ .blog }}/">All {{ .title }} &raquo;</a></p>
</section>
`

const itemContent = `<section class="item">
<h2><a href="{{ .base_path }}/{{ .blog }}/{{ .slug }}/">{{ .title }}</a></h2>
<p class="meta">{{ .date }}</p>
<p>{{ .summary }} &hellip;</p>
</section>
`

const itemRecentContent = `<p><a href="{{ .base_path }}/{{ .blog }}/{{ .slug }}/">{{ .title }}</a>
<span class="meta">{{ .date }}</span></p>
`

const feedXMLContent = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
<channel>
<title>{{ .title }} &#183; {{ .subtitle }}</title>
<link>{{ .site_url }}/{{ .blog }}/</link>
<description>{{ .subtitle }}</description>
<language>{{ .html_lang }}</language>
{{ .content }}</channel>
</rss>
`

const itemXMLContent = `<item>
<title>{{ .title }}</title>
<link>{{ .site_url }}/{{ .blog }}/{{ .slug }}/</link>
<guid>{{ .site_url }}/{{ .blog }}/{{ .slug }}/</guid>
<pubDate>{{ .date_rfc2822 }}</pubDate>
<description>{{ .summary }}</description>
</item>
`

const archetypeContent = `{{ set "title" "[[ .Title ]]" }}
{{/* variables */}}
Written by [[ .Author ]] on [[ .Date ]].
`

const styleCSSContent = `body {
  max-width: 42rem;
  margin: 0 auto;
  padding: 0 1rem;
  font-family: Georgia, serif;
  line-height: 1.6;
}
header, footer {
  padding: 1rem 0;
  border-bottom: 1px solid #ddd;
}
footer {
  border-bottom: none;
  border-top: 1px solid #ddd;
  font-size: 0.85rem;
  color: #666;
}
.meta {
  color: #666;
  font-size: 0.9rem;
}
`
