// ABOUTME: Built-in symbol guide content
// ABOUTME: Traditional and psychological readings for every vocabulary symbol
package symbols

// defaultMeanings holds the seed guide, keyed by symbol name.
var defaultMeanings = map[string][2]string{
	"teeth":       {"Anxiety about ageing or loss; in folklore, a death in the family.", "Concern about appearance, communication, or losing control."},
	"falling":     {"A warning of misfortune or a fall in status.", "Insecurity or a sense that something in waking life is slipping away."},
	"flying":      {"Freedom and rising above one's circumstances.", "Confidence, ambition, or a wish to escape constraints."},
	"chased":      {"Being pursued by trouble or an enemy.", "Avoiding an emotion, person, or responsibility."},
	"water":       {"Purification and life; the state of the water reflects fortune.", "The emotional landscape; calm or turbulent feelings."},
	"ocean":       {"Vastness, the unknown, and the journey of the soul.", "The unconscious mind and feelings too large to contain."},
	"river":       {"The passage of time and life's course.", "Going with the flow or resisting change."},
	"lake":        {"Stillness and reflection.", "Emotional calm or feelings kept contained beneath the surface."},
	"snake":       {"Hidden enemies or temptation; also healing and renewal.", "A threat, repressed fear, or a process of transformation."},
	"spider":      {"Patience and creativity; sometimes entrapment.", "Feeling caught in a web or a dominating presence."},
	"dog":         {"Loyalty and protection.", "Friendship, trust, or instincts you rely on."},
	"cat":         {"Mystery, independence, and feminine energy.", "Intuition or a wish for autonomy."},
	"baby":        {"New beginnings and innocence.", "A new project or vulnerable part of yourself needing care."},
	"death":       {"The end of one phase and start of another.", "Transformation rather than literal loss."},
	"house":       {"The dreamer's life and fortunes.", "The self; rooms represent different aspects of the psyche."},
	"home":        {"Security and belonging.", "Comfort, roots, or unresolved family matters."},
	"school":      {"Lessons still to be learned.", "Performance anxiety or being judged by others."},
	"exam":        {"A test of character ahead.", "Fear of failure or feeling unprepared."},
	"test":        {"A trial or challenge approaching.", "Self-evaluation and fear of not measuring up."},
	"naked":       {"Shame or exposure of secrets.", "Vulnerability and fear of being seen as you are."},
	"lost":        {"Confusion about one's path.", "Uncertainty about direction or identity."},
	"trapped":     {"Obstacles and restriction.", "Feeling stuck in a situation or relationship."},
	"car":         {"Progress along one's path.", "Control over the direction of your life."},
	"vehicle":     {"The means by which one travels through life.", "How you navigate and who is in control."},
	"road":        {"The path of life and choices ahead.", "Direction, decisions, and progress toward goals."},
	"journey":     {"Change and a quest for meaning.", "Personal growth and transition."},
	"money":       {"Prosperity or worry about fortune.", "Self-worth, power, or value placed on something."},
	"food":        {"Abundance and nourishment.", "Emotional hunger or a need for fulfilment."},
	"monster":     {"Evil forces or danger.", "A repressed fear or part of yourself you reject."},
	"friend":      {"Support and good news.", "Qualities you admire or want to integrate."},
	"family":      {"Heritage and bonds.", "Relationships, roles, and early patterns."},
	"stranger":    {"An omen of change or a visitor.", "An unknown aspect of yourself."},
	"celebrity":   {"Recognition and status.", "Aspiration or qualities you project onto others."},
	"fire":        {"Passion, destruction, and purification.", "Anger, desire, or transformation."},
	"blood":       {"Life force and sacrifice.", "Vitality, injury, or emotional exhaustion."},
	"door":        {"Opportunities and thresholds.", "New possibilities or barriers to them."},
	"window":      {"Perspective and outlook.", "How you view your life or wish to be seen."},
	"key":         {"Access to secrets and solutions.", "Knowledge, control, or an answer you are seeking."},
	"box":         {"Hidden things and gifts.", "Repressed feelings or potential waiting to be opened."},
	"mirror":      {"Truth and self-reflection.", "Self-image and how you see yourself."},
	"phone":       {"Messages and news.", "A need to connect or communicate."},
	"computer":    {"Knowledge and modern life.", "Thinking, memory, or information overload."},
	"tree":        {"Growth, life, and ancestry.", "Personal development and rootedness."},
	"forest":      {"The unknown and mystery.", "Exploring the unconscious or feeling lost."},
	"mountain":    {"Obstacles and achievement.", "Goals, ambition, and challenges to overcome."},
	"sky":         {"The heavens and limitless possibility.", "Freedom, aspiration, or state of mind."},
	"sun":         {"Vitality and success.", "Clarity, energy, and consciousness."},
	"moon":        {"Intuition, cycles, and mystery.", "Emotions and the hidden self."},
	"stars":       {"Hope and guidance.", "Aspirations and inspiration."},
	"book":        {"Wisdom and records of life.", "Learning, memory, or a story you tell yourself."},
	"library":     {"Collective knowledge.", "The memory and accumulated experience of the dreamer."},
	"supermarket": {"Choices and abundance.", "Decision-making and meeting everyday needs."},
	"cereal":      {"Harvest and daily sustenance.", "Routine, comfort, or childhood memories."},
	"cloud":       {"Obscured truth or passing trouble.", "Uncertainty, mood, or clouded thinking."},
	"bicycle":     {"Balance and progress by effort.", "Self-reliance and balancing parts of life."},
	"pit":         {"A fall into misfortune.", "Despair or feeling in over your head."},
	"dust":        {"Neglect and the passage of time.", "Forgotten matters or something left unattended."},
	"hands":       {"Skill, giving, and receiving.", "Capability, control, and connection to others."},
}
