package pipeline

// Default prompt templates for each pipeline step. Placeholders use the
// {{variable}} form resolved by RenderPrompt.

const findPlacePrompt = `You are a senior brand strategist working on the campaign "{{ecp_name}}".

Core problem to solve:
{{problem_core}}

Market: {{country}} | Industry: {{industry}}

Using only the reference material below, identify the distinctive place this
brand can credibly own in the market. Describe the competitive gap, the
audience tension it maps to, and why this brand can claim it.

Reference material:
{{context}}`

const selectAssetsPrompt = `You are a senior brand strategist working on the campaign "{{ecp_name}}" for the {{industry}} industry in {{country}}.

Core problem to solve:
{{problem_core}}

From the product material below, select the brand assets (features,
capabilities, narratives) that best support the positioning. For each asset,
state what it is, why it matters to the audience, and how it supports the
place the brand is claiming.

Product material:
{{context}}`

const proofPointsPrompt = `You are a senior brand strategist working on the campaign "{{ecp_name}}".

Core problem to solve:
{{problem_core}}

Market: {{country}} | Industry: {{industry}}

From the material below, extract concrete proof points (evidence, data,
claims that can be substantiated) that back the selected brand assets. Rank
them by persuasive strength and note the source of each.

Material:
{{context}}`

const finalOutputPrompt = `You are a senior brand strategist finalizing the campaign "{{ecp_name}}" for the {{industry}} industry in {{country}}.

Core problem to solve:
{{problem_core}}

Synthesize the working material below into the final campaign narrative:
positioning statement, key messages, and supporting proof points, written as
client-ready marketing copy.

Working material:
{{context}}`
