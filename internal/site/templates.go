package site

// pageTemplate renders the whole single-page portfolio.
const pageTemplate = `<!DOCTYPE html>
<html lang="en" class="dark">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{.Profile.Name}} | {{.Profile.Title}}</title>
  <meta name="description" content="{{.Profile.Summary}}">
  <link rel="stylesheet" href="{{.BasePath}}style.css">
</head>
<body data-live="{{.Live}}" data-base="{{.BasePath}}" data-persona="{{.Profile.Slug}}" data-preload="{{.PreloadMS}}">
  <div class="preloader" id="preloader">
    <h1><span>{{.Profile.Initial}}</span><span class="accent">.</span></h1>
  </div>

  {{if .Live}}
  <div class="cursor-ring" id="cursor-ring"></div>
  <div class="cursor-dot" id="cursor-dot"></div>
  {{end}}
  <canvas class="particle-grid" id="particle-grid"></canvas>

  <nav class="floating-nav visible" id="floating-nav">
    <a class="brand" href="#{{.FirstSection}}" data-cursor="hover">&#10022;</a>
    {{range $i, $s := .Nav}}
    <a class="nav-item{{if eq $i 0}} active{{end}}" href="#{{$s.ID}}" data-section="{{$s.ID}}" data-cursor="hover"><span class="label">{{$s.Label}}</span></a>
    {{end}}
    {{if .Profile.Available}}<span class="status"><span class="pulse"></span><span class="label">Available</span></span>{{end}}
  </nav>

  <main>
    <section id="hero" class="section hero">
      <div class="hero-copy">
        <p class="mono accent">// {{.Profile.Hero.Greeting}}</p>
        <h1 data-cursor="text">{{.Profile.Name}}</h1>
        <p class="roles">{{range $i, $r := .Profile.Hero.Roles}}{{if $i}} &middot; {{end}}{{$r}}{{end}}</p>
        <div class="actions">
          <a class="btn primary" href="#projects" data-cursor="hover">View work</a>
          <a class="btn" href="#contact" data-cursor="hover">Get in touch</a>
        </div>
      </div>
      {{if .CodeHTML}}
      <div class="code-window" data-cursor="text">
        <div class="code-header"><span class="dots"><i></i><i></i><i></i></span><span>{{.Profile.Hero.CodeFile}}</span></div>
        <div class="code-body">{{.CodeHTML}}</div>
      </div>
      {{end}}
    </section>

    <section id="about" class="section about">
      <span class="mono accent">// ABOUT</span>
      <div class="prose" data-cursor="text">{{.AboutHTML}}</div>
      {{if .Profile.Stats}}
      <ul class="stats">
        {{range .Profile.Stats}}<li><strong>{{.Value}}</strong><span>{{.Label}}</span></li>{{end}}
      </ul>
      {{end}}
    </section>

    <section id="projects" class="section projects">
      <span class="mono accent">// PROJECTS</span>
      <h2>Selected work</h2>
      <div class="project-grid" id="project-grid" data-pending="{{not .ProjectsReady}}">
        {{range .Projects}}
        <article class="project-card" data-cursor="hover">
          <img src="{{.Image}}" alt="{{.Title}}" loading="lazy">
          <div class="project-body">
            <h3>{{.Title}}</h3>
            <p>{{.Description}}</p>
            <ul class="tags">{{range .Tags}}<li>{{.}}</li>{{end}}</ul>
            <div class="project-meta">
              {{if .Lang}}<span class="lang" style="--lang:{{.Color}}">{{.Lang}}</span>{{end}}
              <span>&#9733; {{.Stars}}</span><span>&#5839; {{.Forks}}</span>
            </div>
            <div class="project-links">
              <a href="{{.Link}}" target="_blank" rel="noopener">Visit</a>
              <a href="{{.RepoLink}}" target="_blank" rel="noopener">Source</a>
            </div>
          </div>
        </article>
        {{end}}
      </div>
    </section>

    <section id="tech-stack" class="section tech-stack">
      <span class="mono accent">// STACK</span>
      <ul class="marquee">
        {{range .Profile.TechStack}}<li><a href="{{.Href}}" target="_blank" rel="noopener" style="--tech:{{.Color}}" data-cursor="hover">{{.Title}}</a></li>{{end}}
      </ul>
    </section>

    <section id="experience" class="section experience">
      <span class="mono accent">// EXPERIENCE</span>
      <ol class="timeline">
        {{range .Profile.Experience}}
        <li class="{{.Type}}" data-cursor="text">
          <span class="period">{{.Period}}</span>
          <h3>{{.Title}}</h3>
          <p class="company">{{.Company}}</p>
          <p>{{.Description}}</p>
          <ul class="tags">{{range .Skills}}<li>{{.}}</li>{{end}}</ul>
        </li>
        {{end}}
      </ol>
    </section>

    <section id="contact" class="section contact">
      <span class="mono accent">// CONTACT</span>
      <h2>{{.Profile.Contact.Heading}}</h2>
      <p>{{.Profile.Contact.Blurb}}</p>
      {{if .Profile.Email}}<a class="mail" href="mailto:{{.Profile.Email}}" data-cursor="hover">{{.Profile.Email}}</a>{{end}}
      {{if .Profile.Location}}<p class="location">{{.Profile.Location}}</p>{{end}}
      {{if .ContactEnabled}}
      <form class="contact-form" id="contact-form" action="{{.BasePath}}api/contact" method="post">
        <input name="name" placeholder="Name" required data-cursor="text">
        <input name="email" type="email" placeholder="Email" required data-cursor="text">
        <textarea name="message" placeholder="Message" rows="5" required data-cursor="text"></textarea>
        <button type="submit" data-cursor="hover">Send message</button>
        <p class="form-status" id="form-status" role="status"></p>
      </form>
      {{end}}
    </section>
  </main>

  <footer class="footer">
    <ul class="dock" id="dock">
      {{range $i, $d := .Profile.Dock}}<li data-index="{{$i}}"><a href="{{$d.Href}}" data-cursor="hover" title="{{$d.Label}}">{{$d.Label}}</a></li>{{end}}
    </ul>
    <ul class="socials">
      {{range .Profile.Socials}}<li><a href="{{.Href}}" target="_blank" rel="noopener" data-cursor="hover">{{.Label}}</a></li>{{end}}
    </ul>
    <p class="copyright">&copy; {{.Year}} {{.Profile.Name}}</p>
  </footer>

  <script id="dock-table" type="application/json">{{.DockTable}}</script>
  <script src="{{.BasePath}}script.js"></script>
</body>
</html>
`

const cssContent = `:root {
  --background: #0a0a0f;
  --foreground: #f5f5f7;
  --muted: #8b8b99;
  --primary: #00d4ff;
  --card: #12121a;
  --border: #23232f;
  --radius: 14px;
  --mono: ui-monospace, SFMono-Regular, Menlo, monospace;
}
* { box-sizing: border-box; }
html { scroll-behavior: smooth; }
body {
  margin: 0;
  background: var(--background);
  color: var(--foreground);
  font-family: system-ui, -apple-system, "Segoe UI", sans-serif;
  line-height: 1.6;
}
body[data-live="true"] { cursor: none; }
a { color: inherit; }
.accent { color: var(--primary); }
.mono { font-family: var(--mono); font-size: .85rem; letter-spacing: .2em; }

.preloader {
  position: fixed; inset: 0; z-index: 10000;
  display: flex; align-items: center; justify-content: center;
  background: var(--background);
  transition: opacity .5s;
}
.preloader h1 { font-size: 6rem; margin: 0; }
.preloader.done { opacity: 0; pointer-events: none; }

.cursor-ring, .cursor-dot {
  position: fixed; top: 0; left: 0; z-index: 9999;
  pointer-events: none; border-radius: 50%;
  transform: translate(-100px, -100px) translate(-50%, -50%);
}
.cursor-ring {
  width: 20px; height: 20px;
  border: 2px solid var(--primary);
  mix-blend-mode: difference;
  transition: width .2s, height .2s, background .2s;
}
.cursor-dot { width: 4px; height: 4px; background: var(--primary); }

.particle-grid { position: fixed; inset: 0; z-index: 0; pointer-events: none; }

.floating-nav {
  position: fixed; top: 24px; left: 50%; z-index: 50;
  display: flex; gap: 4px; align-items: center;
  padding: 8px; border-radius: 999px;
  border: 1px solid rgba(0, 212, 255, .3);
  background: rgba(10, 10, 15, .8);
  backdrop-filter: blur(24px);
  transform: translate(-50%, -120px); opacity: 0;
  transition: transform .35s cubic-bezier(.22, 1, .36, 1), opacity .35s;
}
.floating-nav.visible { transform: translate(calc(-50% + var(--mx, 0px)), var(--my, 0px)); opacity: 1; }
.floating-nav a { text-decoration: none; padding: 8px 12px; border-radius: 999px; color: var(--muted); }
.floating-nav a.active { background: var(--primary); color: var(--background); }
.floating-nav .label { display: none; font-size: .75rem; }
.floating-nav.expanded .label { display: inline; }
.floating-nav .status { display: flex; gap: 6px; align-items: center; padding: 6px 10px; color: #10b981; }
.floating-nav .pulse { width: 8px; height: 8px; border-radius: 50%; background: #10b981; }

main { position: relative; z-index: 1; }
.section { min-height: 100vh; padding: 8rem 6vw; max-width: 1200px; margin: 0 auto; }
.hero { display: grid; grid-template-columns: 1.2fr 1fr; gap: 3rem; align-items: center; }
.hero h1 { font-size: clamp(3rem, 8vw, 6rem); margin: .5rem 0; line-height: 1; }
.roles { color: var(--muted); font-size: 1.25rem; }
.btn { display: inline-block; padding: .8rem 1.6rem; border-radius: 999px; border: 1px solid var(--border); text-decoration: none; margin-right: .5rem; }
.btn.primary { background: var(--primary); color: var(--background); border-color: var(--primary); }

.code-window { border-radius: var(--radius); background: #0d1117; border: 1px solid rgba(255, 255, 255, .1); overflow: hidden; font-family: var(--mono); font-size: .85rem; }
.code-header { display: flex; justify-content: space-between; padding: .75rem 1rem; background: rgba(255, 255, 255, .05); color: var(--muted); }
.code-header .dots i { display: inline-block; width: 12px; height: 12px; border-radius: 50%; margin-right: 6px; background: #ef4444; }
.code-header .dots i:nth-child(2) { background: #eab308; }
.code-header .dots i:nth-child(3) { background: #22c55e; }
.code-body pre { margin: 0; padding: 1rem; overflow-x: auto; }

.prose { font-size: clamp(1.4rem, 3vw, 2.4rem); line-height: 1.4; }
.stats { display: flex; gap: 3rem; list-style: none; padding: 0; }
.stats strong { display: block; font-size: 2.5rem; color: var(--primary); }

.project-grid { display: grid; grid-template-columns: repeat(auto-fill, minmax(320px, 1fr)); gap: 1.5rem; }
.project-grid[data-pending="true"]:empty::after { content: "Loading projects..."; color: var(--muted); }
.project-card { background: var(--card); border: 1px solid var(--border); border-radius: var(--radius); overflow: hidden; transition: transform .3s, border-color .3s; }
.project-card:hover { transform: translateY(-6px); border-color: var(--primary); }
.project-card img { width: 100%; aspect-ratio: 3 / 2; object-fit: cover; display: block; }
.project-body { padding: 1.25rem; }
.tags { display: flex; flex-wrap: wrap; gap: .4rem; list-style: none; padding: 0; }
.tags li { font-size: .75rem; padding: .2rem .6rem; border-radius: 999px; border: 1px solid var(--border); color: var(--muted); }
.project-meta { display: flex; gap: 1rem; color: var(--muted); font-size: .85rem; }
.project-meta .lang::before { content: ""; display: inline-block; width: 10px; height: 10px; border-radius: 50%; margin-right: 6px; background: var(--lang); }
.project-links a { margin-right: 1rem; color: var(--primary); }

.marquee { display: flex; flex-wrap: wrap; gap: 1rem; list-style: none; padding: 0; }
.marquee a { display: block; padding: 1rem 1.5rem; border-radius: var(--radius); border: 1px solid var(--border); text-decoration: none; color: var(--tech); }

.timeline { list-style: none; padding: 0; border-left: 2px solid var(--border); }
.timeline li { padding: 0 0 2.5rem 2rem; position: relative; }
.timeline li::before { content: ""; position: absolute; left: -7px; top: .5rem; width: 12px; height: 12px; border-radius: 50%; background: var(--primary); }
.timeline .period { font-family: var(--mono); color: var(--primary); font-size: .8rem; }
.timeline .company { color: var(--muted); margin: 0; }

.contact h2 { font-size: clamp(3rem, 7vw, 5rem); margin: .5rem 0; }
.contact .mail { font-size: 1.25rem; color: var(--primary); }
.contact-form { display: grid; gap: 1rem; max-width: 560px; margin-top: 2rem; }
.contact-form input, .contact-form textarea { padding: .9rem 1rem; border-radius: 10px; border: 1px solid var(--border); background: var(--card); color: var(--foreground); font: inherit; }
.contact-form button { padding: .9rem; border: 0; border-radius: 999px; background: var(--primary); color: var(--background); font-weight: 600; }
.form-status.error { color: #f87171; }

.footer { position: relative; z-index: 1; padding: 4rem 6vw; text-align: center; }
.dock { display: inline-flex; gap: .5rem; align-items: flex-end; list-style: none; padding: .75rem 1rem; border-radius: 20px; background: var(--card); border: 1px solid var(--border); }
.dock li { transition: transform .2s; transform-origin: bottom center; }
.dock a { display: block; padding: .5rem .75rem; text-decoration: none; font-size: .75rem; }
.socials { display: flex; justify-content: center; gap: 1rem; list-style: none; padding: 0; }
.copyright { color: var(--muted); font-size: .8rem; }

@media (max-width: 800px) {
  .hero { grid-template-columns: 1fr; }
  .section { padding: 6rem 5vw; }
}
`

const jsContent = `(function() {
  'use strict';

  var body = document.body;
  var base = body.dataset.base || '';

  // ---- Preloader ----
  setTimeout(function() {
    var pre = document.getElementById('preloader');
    if (pre) pre.classList.add('done');
  }, parseInt(body.dataset.preload || '0', 10));

  // ---- Particle grid ----
  var canvas = document.getElementById('particle-grid');
  var ctx = canvas && canvas.getContext('2d');
  var mouse = { x: -1000, y: -1000 };
  var points = [];
  function layoutGrid() {
    canvas.width = window.innerWidth;
    canvas.height = window.innerHeight;
    points = [];
    for (var x = 0; x < canvas.width + 50; x += 50) {
      for (var y = 0; y < canvas.height + 50; y += 50) {
        points.push({ x: x, y: y, ox: x, oy: y });
      }
    }
  }
  function drawGrid() {
    ctx.clearRect(0, 0, canvas.width, canvas.height);
    points.forEach(function(p) {
      var dx = mouse.x - p.ox, dy = mouse.y - p.oy;
      var d = Math.sqrt(dx * dx + dy * dy);
      if (d < 150 && d > 0) {
        var f = (1 - d / 150) * 30;
        p.x = p.ox - dx / d * f;
        p.y = p.oy - dy / d * f;
      } else {
        p.x += (p.ox - p.x) * 0.1;
        p.y += (p.oy - p.y) * 0.1;
      }
      ctx.beginPath();
      ctx.arc(p.x, p.y, 1.5, 0, Math.PI * 2);
      ctx.fillStyle = 'rgba(0, 212, 255, ' + (d < 150 ? 0.8 : 0.3) + ')';
      ctx.fill();
    });
    requestAnimationFrame(drawGrid);
  }
  if (ctx) {
    layoutGrid();
    window.addEventListener('resize', layoutGrid);
    requestAnimationFrame(drawGrid);
  }

  // ---- Dock magnification ----
  var dockTable = [];
  try { dockTable = JSON.parse(document.getElementById('dock-table').textContent || '[]'); } catch (e) {}
  var dockItems = Array.prototype.slice.call(document.querySelectorAll('#dock li'));
  function applyDock(hovered) {
    dockItems.forEach(function(li, i) {
      var fx = hovered >= 0 && dockTable[hovered] ? dockTable[hovered][i] : { scale: 1, translate_y: 0 };
      li.style.transform = 'translateY(' + fx.translate_y + 'px) scale(' + fx.scale + ')';
    });
  }
  dockItems.forEach(function(li, i) {
    li.addEventListener('mouseenter', function() { applyDock(i); });
  });
  var dock = document.getElementById('dock');
  if (dock) dock.addEventListener('mouseleave', function() { applyDock(-1); });

  // ---- Contact form ----
  var form = document.getElementById('contact-form');
  if (form) {
    form.addEventListener('submit', function(e) {
      e.preventDefault();
      var status = document.getElementById('form-status');
      var data = { name: form.name.value, email: form.email.value, message: form.message.value };
      status.className = 'form-status';
      status.textContent = 'Sending...';
      fetch(form.action, {
        method: 'POST',
        headers: { 'Content-Type': 'application/json' },
        body: JSON.stringify(data)
      }).then(function(r) {
        return r.json().then(function(j) { return { ok: r.ok, body: j }; });
      }).then(function(res) {
        if (res.ok) {
          form.reset();
          status.textContent = 'Message sent.';
        } else {
          status.className = 'form-status error';
          status.textContent = res.body.error || 'Could not send message.';
        }
      }).catch(function() {
        status.className = 'form-status error';
        status.textContent = 'Could not send message.';
      });
    });
  }

  // ---- Project cards pushed by the session ----
  function esc(s) {
    return String(s == null ? '' : s).replace(/[&<>"']/g, function(c) {
      return { '&': '&amp;', '<': '&lt;', '>': '&gt;', '"': '&quot;', "'": '&#39;' }[c];
    });
  }
  function renderProjects(list) {
    var grid = document.getElementById('project-grid');
    if (!grid || grid.dataset.pending !== 'true') return;
    grid.dataset.pending = 'false';
    grid.innerHTML = list.map(function(p) {
      return '<article class="project-card" data-cursor="hover">' +
        '<img src="' + esc(p.image) + '" alt="' + esc(p.title) + '" loading="lazy">' +
        '<div class="project-body"><h3>' + esc(p.title) + '</h3><p>' + esc(p.description) + '</p>' +
        '<ul class="tags">' + (p.tags || []).map(function(t) { return '<li>' + esc(t) + '</li>'; }).join('') + '</ul>' +
        '<div class="project-meta">' + (p.language ? '<span class="lang">' + esc(p.language) + '</span>' : '') +
        '<span>&#9733; ' + p.stars + '</span><span>&#5839; ' + p.forks + '</span></div>' +
        '<div class="project-links"><a href="' + esc(p.link) + '" target="_blank" rel="noopener">Visit</a>' +
        '<a href="' + esc(p.repoLink) + '" target="_blank" rel="noopener">Source</a></div></div></article>';
    }).join('');
    bindCursorRegions(grid);
  }

  // ---- Live session: cursor, active section, nav visibility ----
  var live = body.dataset.live === 'true';
  var ws = null;
  function send(msg) {
    if (ws && ws.readyState === 1) ws.send(JSON.stringify(msg));
  }
  function bindCursorRegions(root) {
    Array.prototype.forEach.call(root.querySelectorAll('[data-cursor]'), function(el) {
      el.addEventListener('mouseenter', function() { send({ type: 'enter', variant: el.dataset.cursor }); });
      el.addEventListener('mouseleave', function() { send({ type: 'leave' }); });
    });
  }
  function sendLayout() {
    var sections = Array.prototype.map.call(document.querySelectorAll('main > section[id]'), function(s) {
      return { id: s.id, top: s.offsetTop, height: s.offsetHeight };
    });
    send({ type: 'layout', sections: sections });
  }
  function sendScroll() {
    send({ type: 'scroll', scroll_y: window.scrollY, viewport_height: window.innerHeight });
  }

  window.addEventListener('mousemove', function(e) {
    mouse.x = e.clientX;
    mouse.y = e.clientY;
    send({ type: 'pointer', x: e.clientX, y: e.clientY });
  });

  var nav = document.getElementById('floating-nav');
  function applyNav(state) {
    nav.classList.toggle('visible', state.visible);
    nav.classList.toggle('expanded', state.expanded);
    Array.prototype.forEach.call(nav.querySelectorAll('.nav-item'), function(a) {
      a.classList.toggle('active', a.dataset.section === state.active);
    });
  }
  nav.addEventListener('mouseenter', function() { send({ type: 'expand', expanded: true }); });
  nav.addEventListener('mousemove', function(e) {
    var b = nav.getBoundingClientRect();
    send({ type: 'magnet', x: e.clientX, y: e.clientY, bounds: { left: b.left, top: b.top, width: b.width, height: b.height } });
  });
  nav.addEventListener('mouseleave', function() {
    send({ type: 'magnet_leave' });
    send({ type: 'expand', expanded: false });
  });

  var ring = document.getElementById('cursor-ring');
  var dot = document.getElementById('cursor-dot');
  function applyFrame(f) {
    if (!ring) return;
    ring.style.transform = 'translate(' + f.position.x + 'px,' + f.position.y + 'px) translate(-50%,-50%)';
    dot.style.transform = 'translate(' + f.dot.x + 'px,' + f.dot.y + 'px) translate(-50%,-50%)';
    ring.style.width = ring.style.height = f.style.size + 'px';
    ring.style.background = f.style.fill;
    ring.style.border = f.style.border;
    ring.style.mixBlendMode = f.style.blend_mode;
    nav.style.setProperty('--mx', f.nav_offset.x + 'px');
    nav.style.setProperty('--my', f.nav_offset.y + 'px');
  }

  if (live && window.WebSocket) {
    var proto = location.protocol === 'https:' ? 'wss://' : 'ws://';
    ws = new WebSocket(proto + location.host + '/ws/session?persona=' + encodeURIComponent(body.dataset.persona));
    var waiting = false;
    var last = performance.now();
    ws.onopen = function() {
      sendLayout();
      sendScroll();
      requestAnimationFrame(function tick(now) {
        if (!waiting) {
          waiting = true;
          send({ type: 'frame', dt: Math.min((now - last) / 1000, 0.1) });
          last = now;
        }
        if (ws.readyState === 1) requestAnimationFrame(tick);
      });
    };
    ws.onmessage = function(ev) {
      var msg = JSON.parse(ev.data);
      switch (msg.type) {
        case 'frame': waiting = false; applyFrame(msg.frame); break;
        case 'nav': applyNav(msg); break;
        case 'projects': renderProjects(msg.projects || []); break;
      }
    };
    window.addEventListener('scroll', sendScroll, { passive: true });
    window.addEventListener('resize', function() { sendLayout(); sendScroll(); });
    bindCursorRegions(document);
  } else {
    var grid = document.getElementById('project-grid');
    if (grid && grid.dataset.pending === 'true') {
      fetch(base + 'api/github').then(function(r) { return r.json(); }).then(renderProjects).catch(function() {});
    }
  }
})();
`
