package web

const stylesheet = `
:root { --bg: #ffffff; --fg: #1f2328; --muted: #59636e; --card: #f6f8fa; --border: #d1d9e0; --accent: #0969da; --done: #1a7f37; }
[data-theme="dark"] { --bg: #0d1117; --fg: #e6edf3; --muted: #9198a1; --card: #151b23; --border: #3d444d; --accent: #4493f8; --done: #3fb950; }
* { box-sizing: border-box; }
body { margin: 0; font-family: system-ui, sans-serif; background: var(--bg); color: var(--fg); }
a { color: var(--accent); }
.site-header { display: flex; align-items: center; gap: 1rem; padding: .75rem 1rem; border-bottom: 1px solid var(--border); position: relative; }
.brand { font-weight: 700; text-decoration: none; color: var(--fg); }
.menu-toggle { cursor: pointer; user-select: none; }
.menu-toggle input { display: none; }
.menu-toggle.open span, #menu-check:checked + span { color: var(--accent); }
.nav-links { display: flex; gap: 1rem; }
.theme-form { margin-left: auto; }
#theme-toggle { background: none; border: 1px solid var(--border); border-radius: 6px; color: var(--fg); padding: .25rem; cursor: pointer; }
#theme-toggle svg { width: 20px; height: 20px; display: block; }
@media (max-width: 767px) {
  .nav-links { position: absolute; top: 100%; left: 0; right: 0; flex-direction: column; background: var(--card); padding: 1rem; border-bottom: 1px solid var(--border); }
}
@media (min-width: 768px) {
  .menu-toggle { display: none; }
  .nav-links { display: flex !important; }
}
.content { max-width: 1100px; margin: 0 auto; padding: 1rem; }
.grid { display: grid; grid-template-columns: repeat(auto-fill, minmax(300px, 1fr)); gap: 1rem; }
.card { display: block; background: var(--card); border: 1px solid var(--border); border-radius: 8px; padding: 1rem; text-decoration: none; color: var(--fg); }
.muted { color: var(--muted); }
.filter { width: 100%; padding: .5rem; margin-bottom: 1rem; background: var(--bg); color: var(--fg); border: 1px solid var(--border); border-radius: 6px; }
.tool label { display: flex; justify-content: space-between; gap: .5rem; margin: .35rem 0; }
.tool input, .tool select { width: 10rem; background: var(--bg); color: var(--fg); border: 1px solid var(--border); border-radius: 4px; padding: .2rem .4rem; }
.results { display: grid; grid-template-columns: auto 1fr; gap: .25rem 1rem; font-variant-numeric: tabular-nums; }
.results dd { margin: 0; font-weight: 600; }
.checklist { list-style: none; padding: 0; }
.checklist-item form { display: flex; align-items: center; gap: .5rem; padding: .4rem 0; }
.checked-item span { color: var(--done); text-decoration: line-through; }
.checklist-item .save { font-size: .75rem; }
`
