package render

// StyleCSS is served as static/style.css.
const StyleCSS = `:root {
  --bg: #ffffff;
  --fg: #1f2328;
  --muted: #656d76;
  --accent: #0969da;
  --border: #d0d7de;
  --card: #f6f8fa;
}
body.dark-mode {
  --bg: #0d1117;
  --fg: #e6edf3;
  --muted: #8d96a0;
  --accent: #4493f8;
  --border: #30363d;
  --card: #161b22;
}
* { box-sizing: border-box; }
body { margin: 0; font-family: system-ui, -apple-system, "Segoe UI", sans-serif; background: var(--bg); color: var(--fg); line-height: 1.6; }
a { color: var(--accent); text-decoration: none; }
a:hover { text-decoration: underline; }
main { max-width: 1100px; margin: 0 auto; padding: 24px; }
.site-header { display: flex; align-items: center; gap: 24px; padding: 12px 24px; border-bottom: 1px solid var(--border); }
.site-header .brand { font-weight: 700; font-size: 1.2rem; color: var(--fg); }
.site-nav { display: flex; gap: 16px; flex: 1; }
.inline-form { display: inline; margin: 0; }
.btn { display: inline-block; padding: 6px 14px; border: 1px solid var(--border); border-radius: 6px; background: var(--card); color: var(--fg); cursor: pointer; font: inherit; }
.btn.small { padding: 3px 10px; font-size: 0.85rem; }
.btn.ghost { background: transparent; }
.btn[aria-pressed="true"] { border-color: var(--accent); color: var(--accent); }
.btn[disabled] { opacity: 0.7; cursor: default; }
.course-layout { display: grid; grid-template-columns: 260px 1fr; gap: 32px; }
.sidebar { border-right: 1px solid var(--border); padding-right: 16px; }
.lesson-list { list-style: none; padding: 0; }
.lesson-list a { display: block; padding: 4px 8px; border-radius: 4px; color: var(--fg); }
.lesson-list a.active { background: var(--card); font-weight: 600; }
.lesson-list a.completed::after { content: " \2713"; color: #1a7f37; }
.lesson-head { display: flex; align-items: center; gap: 12px; }
.lesson-nav { display: flex; justify-content: space-between; margin-top: 32px; }
.lesson-nav #next-link { margin-left: auto; }
.toc ul { list-style: none; padding-left: 0; font-size: 0.9rem; }
.toc .toc-level-3 { padding-left: 16px; }
.toc a.active { font-weight: 600; }
.grid { display: grid; grid-template-columns: repeat(auto-fill, minmax(240px, 1fr)); gap: 16px; }
.card { display: block; padding: 16px; border: 1px solid var(--border); border-radius: 8px; background: var(--card); color: var(--fg); margin-bottom: 16px; }
.card .meta { color: var(--muted); font-size: 0.8rem; text-transform: uppercase; }
.tag { display: inline-block; padding: 0 8px; margin-right: 4px; border-radius: 10px; background: var(--border); font-size: 0.75rem; }
.empty { padding: 24px; text-align: center; color: var(--muted); }
.course-list { list-style: none; padding: 0; display: grid; grid-template-columns: repeat(auto-fill, minmax(200px, 1fr)); gap: 12px; }
.search input { width: 100%; padding: 8px 12px; border: 1px solid var(--border); border-radius: 6px; background: var(--bg); color: var(--fg); margin-bottom: 16px; }
pre { background: var(--card); border: 1px solid var(--border); border-radius: 6px; padding: 12px; overflow-x: auto; }
.token.keyword { color: #cf222e; }
.token.string { color: #0a3069; }
.token.number { color: #0550ae; }
body.dark-mode .token.keyword { color: #ff7b72; }
body.dark-mode .token.string { color: #a5d6ff; }
body.dark-mode .token.number { color: #79c0ff; }
.scroll-top { position: fixed; right: 24px; bottom: 24px; display: none; width: 40px; height: 40px; border-radius: 50%; border: 1px solid var(--border); background: var(--card); color: var(--fg); cursor: pointer; }
.scroll-top.show { display: block; }
@media (max-width: 760px) { .course-layout { grid-template-columns: 1fr; } .sidebar { border-right: none; } }
`

// AppJS is served as static/app.js. It mirrors the scroll-spy, scroll-top
// and theme rules of package ui in the browser.
const AppJS = `(function () {
  'use strict';
  var body = document.body;
  var SCROLL_OFFSET = parseInt(body.dataset.scrollOffset || '96', 10);
  var SHOW_AT = parseInt(body.dataset.scrollTop || '300', 10);
  var THEME_KEY = 'site-theme';

  // Theme: pages without a server-side toggle keep the choice in localStorage.
  var themeBtn = document.getElementById('darkModeToggle');
  function updateThemeLabel() {
    if (!themeBtn) return;
    var isDark = body.classList.contains('dark-mode');
    themeBtn.textContent = isDark ? 'Light Mode' : 'Dark Mode';
    themeBtn.setAttribute('aria-pressed', String(isDark));
  }
  if (themeBtn && themeBtn.type === 'button') {
    try {
      var stored = localStorage.getItem(THEME_KEY);
      if (stored) body.classList.toggle('dark-mode', stored === 'dark');
    } catch (e) {}
    themeBtn.addEventListener('click', function () {
      var isDark = body.classList.toggle('dark-mode');
      try { localStorage.setItem(THEME_KEY, isDark ? 'dark' : 'light'); } catch (e) {}
      updateThemeLabel();
    });
    updateThemeLabel();
  }

  // Scroll-to-top.
  var topBtn = document.getElementById('scrollTopBtn');
  function onScrollTop() {
    if (topBtn) topBtn.classList.toggle('show', window.scrollY > SHOW_AT);
  }
  if (topBtn) {
    topBtn.addEventListener('click', function () { window.scrollTo({ top: 0, behavior: 'smooth' }); });
    document.addEventListener('scroll', onScrollTop, { passive: true });
    onScrollTop();
  }

  // Table-of-contents scroll-spy.
  var items = Array.prototype.slice.call(document.querySelectorAll('.toc a')).map(function (link) {
    var href = link.getAttribute('href') || '';
    var id = href.charAt(0) === '#' ? decodeURIComponent(href.slice(1)) : null;
    return { link: link, id: id, target: id ? document.getElementById(id) : null };
  }).filter(function (it) { return it.id && it.target; });

  function setActive(activeId) {
    items.forEach(function (it) {
      var on = it.id === activeId;
      it.link.classList.toggle('active', on);
      if (on) it.link.setAttribute('aria-current', 'true'); else it.link.removeAttribute('aria-current');
    });
  }
  function findActiveId() {
    var activeId = null;
    items.forEach(function (it) {
      if (it.target.getBoundingClientRect().top - SCROLL_OFFSET <= 0) activeId = it.id;
    });
    return activeId;
  }
  if (items.length) {
    var ticking = false;
    var onSpy = function () {
      if (ticking) return;
      ticking = true;
      requestAnimationFrame(function () {
        setActive(findActiveId());
        ticking = false;
      });
    };
    items.forEach(function (it) {
      it.link.addEventListener('click', function (ev) {
        if (ev.metaKey || ev.ctrlKey || ev.shiftKey || ev.altKey) return;
        ev.preventDefault();
        it.target.scrollIntoView({ behavior: 'smooth', block: 'start' });
        history.replaceState(null, '', '#' + it.id);
        setActive(it.id);
      });
    });
    document.addEventListener('scroll', onSpy, { passive: true });
    window.addEventListener('resize', onSpy);
    onSpy();
  }

  // Copy button on tutorial pages.
  var copyBtn = document.getElementById('copyBtn');
  var codeEl = document.querySelector('#code code');
  if (copyBtn && codeEl && navigator.clipboard) {
    copyBtn.addEventListener('click', function () {
      navigator.clipboard.writeText(codeEl.textContent).then(function () {
        copyBtn.textContent = 'Copied';
        setTimeout(function () { copyBtn.textContent = 'Copy'; }, 900);
      }).catch(function () {
        copyBtn.textContent = 'Unable to copy';
      });
    });
  }
})();
`

// Asset is a static file served next to the pages.
type Asset struct {
	ContentType string
	Body        []byte
}

// Assets returns the static files by name. extraCSS is appended to the
// stylesheet, e.g. the highlighter's token classes.
func Assets(extraCSS ...string) map[string]Asset {
	css := StyleCSS
	for _, s := range extraCSS {
		if s != "" {
			css += "\n" + s
		}
	}
	return map[string]Asset{
		StyleAsset:  {ContentType: "text/css; charset=utf-8", Body: []byte(css)},
		ScriptAsset: {ContentType: "text/javascript; charset=utf-8", Body: []byte(AppJS)},
	}
}
