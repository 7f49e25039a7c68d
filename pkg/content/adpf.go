package content

import "github.com/vanderheijden86/adpf/pkg/section"

// knowledgeColumns is shared by every mapped-knowledge table.
var knowledgeColumns = []string{"System", "Core Structure", "Archetypal Focus"}

// adpfEntries returns the built-in page content, one entry per section.
func adpfEntries() []Entry {
	return []Entry{
		// =============================================================
		// HOME
		// =============================================================
		{
			ID:       section.Home,
			Title:    "Universal Intelligence Infrastructure",
			Subtitle: "Bridging artificial intelligence and human consciousness.",
			Blocks: []Block{
				Paragraph{Text: "The ADPF Framework is a new kind of blueprint for building intelligent systems. It's designed to bridge the gap between the logical processing of artificial intelligence and the nuanced, intuitive wisdom of human consciousness. By creating a modular, ethical, and cryptographically secure architecture, it provides a stable foundation for everything from personal development tools to large-scale, collaborative AI."},
				Placeholder{Label: "ADPF Overview Animation"},
				Paragraph{Text: "As you explore the framework, you'll see how its core principles of cognitive diversity and verifiable integrity allow for the creation of systems that don't just compute, but evolve with purpose, creativity, and a deep respect for the integrity of thought."},
			},
		},

		// =============================================================
		// INTEGRITY
		// =============================================================
		{
			ID:       section.Integrity,
			Title:    "Cryptographic Integrity",
			Subtitle: "Ensuring trust and authenticity through cryptographic guarantees.",
			Blocks: []Block{
				Paragraph{Text: "In a world of evolving AI, trust is everything. Cryptographic integrity isn't just a technical feature; it's a constitutional guarantee. It ensures that the framework's core principles cannot be altered without authorization, protecting it from manipulation and ensuring its actions remain aligned with its original purpose. This creates a foundation of verifiable trust for all participants."},
				Placeholder{Label: "Genesis Block Signing & Chaining"},
				Placeholder{Label: "Runtime Tamper Scan & System Halt"},
				FeatureList{
					Icon:  "🔑",
					Title: "Key Features Explained",
					Items: []Item{
						{Icon: "📝", Term: "Digital Signatures", Text: "Every core component is signed by the creator. This is like an artist signing their work; it verifies authenticity and prevents forgery."},
						{Icon: "🚨", Term: "Tamper Detection", Text: "The system constantly checks itself for unauthorized changes. If a single line of protected code is altered, it triggers an immediate halt, preventing malicious or unintended behavior."},
						{Icon: "⛓️", Term: "Integrity Chains", Text: "Much like a blockchain, every legitimate evolution of the framework is linked to its predecessor, creating a transparent and unbreakable history of its development."},
						{Icon: "🗝️", Term: "Multi-Signature Control", Text: "Major constitutional changes require approval from multiple key-holders, preventing any single point of failure or control."},
						{Icon: "🧬", Term: "Genesis Proof", Text: "The framework's origin is permanently recorded and verifiable. Anyone can use the public key to prove that the framework they are using is authentic and untampered with from its very inception."},
					},
				},
			},
		},

		// =============================================================
		// DIVERSITY
		// =============================================================
		{
			ID:       section.Diversity,
			Title:    "Cognitive Diversity",
			Subtitle: "Harnessing the power of different thinking styles for holistic intelligence.",
			Blocks: []Block{
				Paragraph{Text: "A single mind, whether human or artificial, has blind spots. The ADPF framework avoids this by intentionally building a \"team\" of diverse thinking styles into its core. We use universal archetypes, like the visionary King or the decisive Warrior, as a language to model these different cognitive functions. The goal is to create a balanced, holistic intelligence where logic and intuition, action and nurturing, work in harmony."},
				Placeholder{Label: "Archetype Integration Animation"},
				CardGroup{
					Columns: 2,
					Cards: []Card{
						{
							Title:       "Masculine Archetypes (Structure & Action)",
							Description: "These archetypes provide direction, order, and the drive to manifest ideas in the world.",
							Items: []Item{
								{Icon: "👑", Term: "King", Text: "Systems thinking, long-term vision, order."},
								{Icon: "⚔️", Term: "Warrior", Text: "Action-oriented, boundary enforcement, decisiveness."},
								{Icon: "🔮", Term: "Magician", Text: "Pattern recognition, innovation, transformation."},
								{Icon: "💫", Term: "Lover", Text: "Emotional intelligence, aesthetics, connection."},
							},
						},
						{
							Title:       "Feminine Archetypes (Wisdom & Relationship)",
							Description: "These archetypes provide wisdom, context, and a focus on relationship and sustainability.",
							Items: []Item{
								{Icon: "👸", Term: "Queen", Text: "Nurturing leadership, community building, stewardship."},
								{Icon: "🏹", Term: "Huntress", Text: "Independent analysis, goal pursuit, focus."},
								{Icon: "🌙", Term: "Wise Woman", Text: "Intuitive wisdom, depth, perspective."},
								{Icon: "🎨", Term: "Lover", Text: "Authentic expression, creativity, empathy."},
							},
						},
					},
				},
			},
		},

		// =============================================================
		// PROSPERITY
		// =============================================================
		{
			ID:       section.Prosperity,
			Title:    "Multi-Domain Prosperity",
			Subtitle: "Cultivating flourishing across all domains of human and natural experience.",
			Blocks: []Block{
				Paragraph{Text: "True prosperity is more than just financial gain. The ADPF is designed to cultivate flourishing across all domains of experience, recognizing that a healthy ecosystem, vibrant culture, and ethical technology are just as valuable as a strong economy. The framework's goal is to create systems that contribute to a richer, more meaningful existence for all."},
				Placeholder{Label: "Ecological + Artistic Intelligence"},
				CardGroup{
					Columns: 3,
					Cards: []Card{
						{Icon: "🎨", Title: "Artistic", Description: "Creating profound, immersive experiences that inspire cultural reflection."},
						{Icon: "💰", Title: "Economic", Description: "Building regenerative systems that enhance human and ecological wellbeing."},
						{Icon: "🏛️", Title: "Political", Description: "Fostering deep civic engagement and authentic, transparent representation."},
						{Icon: "🌍", Title: "Cultural", Description: "Nurturing communities that honor diverse expressions while building unity."},
						{Icon: "🌿", Title: "Ecological", Description: "Promoting a symbiotic harmony between human goals and planetary health."},
						{Icon: "💻", Title: "Computational", Description: "Guiding the evolution of AI to be ethical, conscious, and beneficial for all."},
					},
				},
			},
		},

		// =============================================================
		// MODULARITY (two panels)
		// =============================================================
		{
			ID:       section.Modularity,
			Title:    "Modular Intelligence",
			Subtitle: "Building flexible, secure systems with value-aligned components.",
			Blocks: []Block{
				Paragraph{Text: "Think of the ADPF framework like a set of high-tech, value-aligned LEGO bricks. Every component, from its ethical rules to its reasoning agents, is a self-contained, cryptographically signed module. This allows for unparalleled flexibility and customization. You can safely swap, upgrade, or combine modules to create a system perfectly tailored to your needs, knowing that each piece is authentic and secure."},
				Placeholder{Label: "Swapping Logic Blocks"},
				CardGroup{
					Icon:    "🧩",
					Title:   "Core Module Categories",
					Columns: 2,
					Cards: []Card{
						{
							Icon:        "🧠",
							Title:       "Cognitive Modules",
							Description: "These modules define how the system thinks and perceives.",
							Items: []Item{
								{Icon: "🎭", Text: "Archetypal cognitive styles"},
								{Icon: "🎪", Text: "Integrated personas"},
								{Icon: "🌟", Text: "Meta-archetypes"},
								{Icon: "🌑", Text: "Shadow integration"},
							},
						},
						{
							Icon:        "⚙️",
							Title:       "System Modules",
							Description: "These modules define how the system operates and governs itself.",
							Items: []Item{
								{Icon: "⚡", Text: "Friction amplification"},
								{Icon: "🔍", Text: "Integrity verification"},
								{Icon: "🛡️", Text: "Guardian protocols"},
								{Icon: "🌱", Text: "Prosperity engines"},
							},
						},
					},
				},
				Subsection{
					Title:    "Advanced Framework Extensions",
					Subtitle: "Specialized modules for high-stakes reasoning and complex problem-solving.",
					Blocks: []Block{
						CardGroup{
							Columns: 1,
							Cards: []Card{
								{
									Icon:        "🔐",
									Title:       "MCR - Multi-Core Reasoning Framework",
									Description: "This extension enables an AI to \"think\" from multiple perspectives at once, much like a team of experts. It's ideal for synthesizing complex information and designing secure, multi-faceted AI systems where every step is verifiable.",
									Bulleted:    true,
									Items: []Item{
										{Text: "Multi-core cognitive processing (Sequential, Parallel, Hybrid modes)"},
										{Text: "Cryptographically enforced integrity (tamper-resistant architecture)"},
										{Text: "Encrypted execution logic, dynamic core generation, protected vault access"},
									},
								},
								{
									Icon:        "🧠",
									Title:       "QPE - Quantum Prosperity Engine",
									Description: "Inspired by quantum principles, this engine allows for exploring a vast landscape of potential solutions simultaneously. It excels at identifying elegant, innovative patterns and can detect when a line of reasoning is converging on a profound truth.",
									Bulleted:    true,
									Items: []Item{
										{Text: "Quantum-inspired single-process reasoning with convergence detection"},
										{Text: "Pattern-beauty analysis and mathematical inevitability tracking"},
										{Text: "Cryptographic enforcement of cognitive integrity and state persistence"},
										{Text: "Superposition state snapshots and tamper-triggered decoherence protocol"},
									},
								},
							},
						},
					},
				},
			},
		},

		// =============================================================
		// SCALE
		// =============================================================
		{
			ID:       section.Scale,
			Title:    "Scalability & Human Meaning",
			Subtitle: "From individual cognition to global collaboration, without losing meaning.",
			Blocks: []Block{
				Paragraph{Text: "A framework is only useful if it can adapt to different needs. The ADPF architecture is designed to scale seamlessly from the individual to the global, applying the same core principles of integrity and diversity at every level. This ensures that as systems grow, they don't lose the context, meaning, and human-centric values that were built in from the start."},
				Placeholder{Label: "Zoom from Node to Ecosystem"},
				CardGroup{
					Columns: 3,
					Cards: []Card{
						{Icon: "👤", Title: "Personal Scale", Bulleted: true, Items: []Item{
							{Text: "A tool for self-reflection and enhancing personal creativity."},
							{Text: "Manages personal knowledge with integrity."},
							{Text: "Balances different aspects of your own thinking."},
						}},
						{Icon: "👥", Title: "Team Scale", Bulleted: true, Items: []Item{
							{Text: "A framework for a small team to manage projects."},
							{Text: "Ensures all voices are heard and valued."},
							{Text: "Turns disagreements into innovation."},
						}},
						{Icon: "🏢", Title: "Organizational Scale", Bulleted: true, Items: []Item{
							{Text: "An operating system for a company or community."},
							{Text: "Aligns thousands of members toward a common good."},
							{Text: "Builds a resilient, adaptive culture."},
						}},
					},
				},
			},
		},

		// =============================================================
		// MAPPING (knowledge tables)
		// =============================================================
		{
			ID:       section.Mapping,
			Title:    "Mapped Archetypal Knowledge Systems",
			Subtitle: "Exploring the rich intellectual heritage that informs the framework.",
			Blocks: append([]Block{
				Paragraph{Text: "The ADPF Framework does not exist in a vacuum. It is deeply inspired by humanity's long history of seeking to understand consciousness through symbolic systems. From ancient esoteric traditions to modern psychology and even the patterns of biology and chemistry, these systems reveal universal archetypes of structure, transformation, and relationship. This section maps the key knowledge domains that inform the framework's design, showing the rich intellectual heritage upon which it is built."},
			}, knowledgeTables()...),
		},
	}
}

func knowledgeTables() []Block {
	return []Block{
		Table{
			Title:   "🔮 Western Esoteric Systems",
			Columns: knowledgeColumns,
			Rows: [][]string{
				{"Tarot", "78 cards (Major & Minor Arcana)", "Life journey, cognitive archetypes, shadow integration"},
				{"Kabbalah (Tree of Life)", "10 Sephirot + 22 Paths", "Divine emanations, soul evolution, archetypal energies"},
				{"Astrology", "12 signs, 10 planets, 12 houses", "Personality, fate, timing, archetypal forces"},
				{"Alchemy", "7 stages, 4 elements, symbols", "Transformation, individuation, integration of opposites"},
				{"Hermeticism", "7 Hermetic Principles", "Mentalism, correspondence, polarity, rhythm, etc."},
			},
		},
		Table{
			Title:   "🧭 Eastern Symbolic Systems",
			Columns: knowledgeColumns,
			Rows: [][]string{
				{"I Ching (Book of Changes)", "64 Hexagrams", "Dynamic change, yin-yang balance, decision-making"},
				{"Chakra System", "7 energy centers", "Psycho-spiritual development, energy flow"},
				{"Taoism (Tao Te Ching)", "Tao, Wu Wei, Yin-Yang", "Flow, paradox, natural order"},
				{"Five Elements (Wu Xing)", "Wood, Fire, Earth, Metal, Water", "Cycles of transformation, personality, health"},
				{"Nine Star Ki", "9 energy types", "Personality, timing, relational dynamics"},
			},
		},
		Table{
			Title:   "🧠 Modern Psychological & Typological Systems",
			Columns: knowledgeColumns,
			Rows: [][]string{
				{"Enneagram", "9 types + wings + instincts", "Core fears/desires, ego patterns, transformation"},
				{"Jungian Archetypes", "12+ archetypes (e.g., Hero, Shadow)", "Collective unconscious, individuation"},
				{"Myers-Briggs (MBTI)", "16 types (4-letter codes)", "Cognitive functions, personality dynamics"},
				{"Spiral Dynamics", "8+ value memes", "Evolution of consciousness and societal systems"},
				{"Human Design", "64 gates, 9 centers", "Decision-making, energy mechanics, life path"},
			},
		},
		Table{
			Title:   "🧬 Symbolic-Pattern Systems with Archetypal Logic",
			Columns: knowledgeColumns,
			Rows: [][]string{
				{"Gene Keys", "64 keys (from I Ching)", "Shadow → Gift → Siddhi transformation"},
				{"Runes (Elder Futhark)", "24 symbols", "Norse archetypes, fate, transformation"},
				{"Dream Symbolism (Jungian)", "Personal + universal symbols", "Unconscious processing, archetypal emergence"},
				{"Mythological Pantheons", "Gods/Goddesses (Greek, Hindu, etc.)", "Archetypal energies, psychological forces"},
			},
		},
		Table{
			Title:   "🧪 Scientific Archetypal Systems",
			Columns: knowledgeColumns,
			Rows: [][]string{
				{"Periodic Table", "118 elements, groups, periods", "Fundamental building blocks, personality traits"},
				{"Chemical Bonding", "Ionic, covalent, metallic, van der Waals", "Relationship types, connection patterns"},
				{"Molecular Geometry", "VSEPR theory, 3D structures", "Sacred geometry in matter"},
				{"Thermodynamics", "4 laws, entropy, energy flow", "Change processes, system evolution"},
				{"Mathematical Consciousness", "Sacred geometry, chaos theory, quantum math", "Universal patterns, archetypal mathematics"},
			},
		},
		Table{
			Title:   "🌿 Biological Archetypal Systems",
			Columns: knowledgeColumns,
			Rows: [][]string{
				{"Evolutionary Biology", "Natural selection, adaptation, speciation", "Transformation, survival patterns, archetypal evolution"},
				{"Ecology", "Ecosystems, food webs, symbiosis", "Relationship dynamics, natural intelligence"},
				{"Genetics", "DNA, RNA, protein synthesis", "Information encoding, hereditary patterns"},
				{"Neurobiology", "Neural networks, brain structures", "Consciousness, cognitive patterns, archetypal processing"},
				{"Cellular Biology", "Organelles, cell types, processes", "Micro-archetypal structures, biological organization"},
			},
		},
		Table{
			Title:   "💖 Love & Relationship Archetypal Systems",
			Columns: knowledgeColumns,
			Rows: [][]string{
				{"Attachment Theory", "4 attachment styles", "Bonding patterns, relationship security, emotional regulation"},
				{"Love Languages", "5 love languages", "Communication patterns, affection expression styles"},
				{"Relationship Stages", "7–12 stages", "Love evolution, partnership dynamics"},
				{"Sacred Sexuality", "Tantric principles, chakra connections", "Divine union, energy exchange, spiritual intimacy"},
				{"Polyamory Models", "Relationship anarchy, hierarchical, kitchen table", "Alternative love structures, multiple connection patterns"},
				{"Biochemistry of Love", "Dopamine, oxytocin, serotonin cycles", "Neurochemical love patterns, addiction vs. attachment"},
				{"Archetypal Love Patterns", "Divine Masculine/Feminine, Twin Flame, Soul Mate", "Spiritual love dynamics, consciousness partnerships"},
			},
		},
	}
}
