package http

// dashboardHTML is the whole front end: three filter controls bound to the
// facets endpoint and two plotly divs redrawn (not mutated) on every
// control change. plotly.js comes from a CDN, like any other black-box
// rendering dependency. There is deliberately no reset control; the initial
// selection is only reachable by reloading the page.
const dashboardHTML = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="utf-8" />
    <meta name="viewport" content="width=device-width, initial-scale=1" />
    <title>Renewable Energy Dashboard</title>
    <script src="https://cdn.plot.ly/plotly-2.35.2.min.js" charset="utf-8"></script>
    <style>
        body { font-family: system-ui, sans-serif; margin: 0; background: #f6f7f9; }
        .container { max-width: 1100px; margin: 0 auto; padding: 1.5rem; }
        h1 { margin: 0.5rem 0 1rem; }
        .filters { background: #fff; border: 1px solid #dde1e6; border-radius: 8px; padding: 1rem; margin-bottom: 1.5rem; }
        .filters .row { display: flex; gap: 2rem; flex-wrap: wrap; }
        .filters label { display: block; font-weight: 600; margin-bottom: 0.3rem; }
        .filters select { min-width: 220px; }
        .chart { background: #fff; border: 1px solid #dde1e6; border-radius: 8px; padding: 0.5rem; margin-bottom: 1.5rem; }
    </style>
</head>
<body>
<div class="container">
    <h1>Renewable Energy Dashboard</h1>
    <div class="filters">
        <div class="row">
            <div>
                <label>Select Year Range:</label>
                <select id="year-min"></select> &ndash; <select id="year-max"></select>
            </div>
            <div>
                <label>Select States:</label>
                <select id="state-selector" multiple size="8"></select>
            </div>
            <div>
                <label>Select Energy Sources:</label>
                <select id="source-selector" multiple size="8"></select>
            </div>
        </div>
    </div>
    <h3>Renewable Energy Sources by State</h3>
    <div id="state-chart" class="chart"></div>
    <h3>Renewable Energy Sources Over Time</h3>
    <div id="time-chart" class="chart"></div>
</div>
<script>
    const el = (id) => document.getElementById(id);

    function fillSelect(select, values, selected) {
        const chosen = new Set(selected);
        select.innerHTML = "";
        for (const v of values) {
            const opt = document.createElement("option");
            opt.value = v;
            opt.textContent = v;
            opt.selected = chosen.has(v) || chosen.has(String(v));
            select.appendChild(opt);
        }
    }

    function selection() {
        const picked = (select) => Array.from(select.selectedOptions).map((o) => o.value);
        return {
            year_min: parseInt(el("year-min").value, 10),
            year_max: parseInt(el("year-max").value, 10),
            states: picked(el("state-selector")),
            sources: picked(el("source-selector")),
        };
    }

    async function redraw() {
        const resp = await fetch("/api/figures", {
            method: "POST",
            headers: { "Content-Type": "application/json" },
            body: JSON.stringify(selection()),
        });
        const figures = await resp.json();
        // Full regeneration on every change: newPlot, never restyle.
        Plotly.newPlot("state-chart", figures.state_chart.data, figures.state_chart.layout);
        Plotly.newPlot("time-chart", figures.time_chart.data, figures.time_chart.layout);
    }

    async function init() {
        const facets = await (await fetch("/api/facets")).json();
        const def = facets.default_selection;
        fillSelect(el("year-min"), facets.years, [def.year_min]);
        fillSelect(el("year-max"), facets.years, [def.year_max]);
        fillSelect(el("state-selector"), facets.states, def.states);
        fillSelect(el("source-selector"), facets.sources, def.sources);
        for (const id of ["year-min", "year-max", "state-selector", "source-selector"]) {
            el(id).addEventListener("change", redraw);
        }
        await redraw();
    }

    window.onload = init;
</script>
</body>
</html>
`
